package ics

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/google/uuid"
	"github.com/teambition/rrule-go"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
	"go.uber.org/zap"

	"github.com/Raghav-2611/saanjha/internal/schedule"
)

const (
	productID = "-//saanjha//schedule//EN"

	propAltDesc   = ical.ComponentProperty("X-ALT-DESC")
	propCreatedBy = ical.ComponentProperty("X-SAANJHA-CREATED-BY")
)

// Encode writes entries as an iCalendar document with one VEVENT per entry.
// Recurring entries carry an RRULE so calendar apps expand them natively.
// Lines end in CRLF on every platform.
func Encode(w io.Writer, entries []schedule.Entry, now time.Time) error {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)

	for _, e := range entries {
		if err := addEvent(cal, e, now); err != nil {
			return fmt.Errorf("entry '%s': %w", e.ShortID(), err)
		}
	}

	return cal.SerializeTo(w, ical.WithNewLineWindows)
}

func addEvent(cal *ical.Calendar, e schedule.Entry, now time.Time) error {
	ev := cal.AddEvent(e.ID.String())
	ev.SetDtStampTime(now.UTC())
	ev.SetStartAt(e.OccursAt.UTC())
	ev.SetSummary(e.Title)
	ev.AddProperty(ical.ComponentPropertyCategories, string(kindOrDefault(e.Kind)))

	if !e.Recurrence.Valid() && e.Recurrence != "" {
		return fmt.Errorf("unknown recurrence %q", string(e.Recurrence))
	}
	if v := e.Recurrence.RRuleValue(); v != "" {
		ev.AddProperty(ical.ComponentPropertyRrule, v)
	}

	if e.Notes != "" {
		ev.SetDescription(e.Notes)
		alt, err := renderNotes(e.Notes)
		if err != nil {
			return err
		}
		ev.AddProperty(propAltDesc, alt, &ical.KeyValues{Key: "FMTTYPE", Value: []string{"text/html"}})
	}
	if e.CreatedByName != "" {
		ev.AddProperty(propCreatedBy, e.CreatedByName)
	}
	return nil
}

// notesMarkdown links bare URLs (clinic maps, booking pages) and keeps the
// single line breaks people type between items.
var notesMarkdown = goldmark.New(
	goldmark.WithExtensions(
		extension.Linkify,
		extension.Strikethrough,
	),
	goldmark.WithRendererOptions(
		html.WithHardWraps(),
	),
)

// renderNotes converts Markdown notes into a single-line HTML fragment.
func renderNotes(notes string) (string, error) {
	var buf bytes.Buffer
	if err := notesMarkdown.Convert([]byte(notes), &buf); err != nil {
		return "", fmt.Errorf("rendering notes: %w", err)
	}
	return strings.ReplaceAll(strings.TrimSpace(buf.String()), "\n", ""), nil
}

func kindOrDefault(k schedule.Kind) schedule.Kind {
	if k == "" {
		return schedule.KindEvent
	}
	return k
}

// Parse reads VEVENTs from an iCalendar document into entries. Events that
// cannot be represented are logged and skipped.
func Parse(r io.Reader, logger *zap.Logger) ([]schedule.Entry, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	cal, err := ical.ParseCalendar(r)
	if err != nil {
		return nil, fmt.Errorf("parse calendar: %w", err)
	}

	var entries []schedule.Entry
	for _, ev := range cal.Events() {
		e, err := parseEvent(ev)
		if err != nil {
			logger.Warn("skipping vevent", zap.String("uid", ev.Id()), zap.Error(err))
			continue
		}
		entries = append(entries, e)
	}

	logger.Debug("calendar parsed", zap.Int("entries", len(entries)))
	return entries, nil
}

func parseEvent(ev *ical.VEvent) (schedule.Entry, error) {
	var e schedule.Entry

	uid := propValue(ev, ical.ComponentPropertyUniqueId)
	if uid == "" {
		return e, errors.New("missing UID")
	}
	id, err := uuid.Parse(uid)
	if err != nil {
		id = uuid.NewSHA1(uuid.NameSpaceURL, []byte(uid))
	}
	e.ID = id

	start, err := ev.GetStartAt()
	if err != nil {
		if start, err = ev.GetAllDayStartAt(); err != nil {
			return e, fmt.Errorf("DTSTART: %w", err)
		}
	}
	e.OccursAt = start

	// Text values arrive unescaped from the parser.
	e.Title = strings.TrimSpace(propValue(ev, ical.ComponentPropertySummary))
	if e.Title == "" {
		return e, errors.New("missing SUMMARY")
	}
	e.Notes = propValue(ev, ical.ComponentPropertyDescription)
	e.CreatedByName = propValue(ev, propCreatedBy)

	e.Kind = schedule.KindEvent
	if cat := propValue(ev, ical.ComponentPropertyCategories); cat != "" {
		if k, err := schedule.ParseKind(cat); err == nil {
			e.Kind = k
		}
	}

	e.Recurrence, err = recurrenceOf(propValue(ev, ical.ComponentPropertyRrule))
	if err != nil {
		return e, err
	}
	return e, nil
}

// recurrenceOf maps an RRULE value onto a Recurrence. Only plain daily,
// weekly and monthly rules have an equivalent.
func recurrenceOf(value string) (schedule.Recurrence, error) {
	if value == "" {
		return schedule.RecurrenceNone, nil
	}

	opt, err := rrule.StrToROption(value)
	if err != nil {
		return "", fmt.Errorf("RRULE %q: %w", value, err)
	}
	if opt.Count == 1 {
		return schedule.RecurrenceNone, nil
	}
	if opt.Interval > 1 || opt.Count > 1 || !opt.Until.IsZero() ||
		len(opt.Byweekday) > 0 || len(opt.Bymonthday) > 0 || len(opt.Bymonth) > 0 || len(opt.Bysetpos) > 0 {
		return "", fmt.Errorf("RRULE %q is not supported", value)
	}

	switch opt.Freq {
	case rrule.DAILY:
		return schedule.RecurrenceDaily, nil
	case rrule.WEEKLY:
		return schedule.RecurrenceWeekly, nil
	case rrule.MONTHLY:
		return schedule.RecurrenceMonthly, nil
	}
	return "", fmt.Errorf("RRULE %q is not supported", value)
}

func propValue(ev *ical.VEvent, p ical.ComponentProperty) string {
	if prop := ev.GetProperty(p); prop != nil {
		return prop.Value
	}
	return ""
}
