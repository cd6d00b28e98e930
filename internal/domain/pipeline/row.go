package pipeline

import (
	"fmt"
	"strconv"
	"strings"
)

const placeholder = "—"

// Row is a record with every display string resolved.
type Row struct {
	ID            string
	Name          string
	AccountID     string
	AccountName   string
	Industry      string
	Stage         string
	Value         string
	Owner         string
	RiskLabel     string
	Closing       string
	LastTouchDate string
	LastTouchType string
	StaleLabel    string
	StaleSeverity Severity
	AR            string
	LastActivity  string
	ToastMessage  string
}

// NewRow formats r for display.
func NewRow(r Record, f Formatter) Row {
	row := Row{
		ID:            r.ID,
		Name:          r.Name,
		AccountID:     r.AccountID,
		AccountName:   r.AccountName,
		Industry:      r.Industry,
		Stage:         orPlaceholder(r.Stage),
		Value:         f.Money(r.Amount()),
		Owner:         orPlaceholder(r.Agent),
		RiskLabel:     RiskLabel(r.Risk),
		Closing:       placeholder,
		LastTouchDate: placeholder,
		StaleLabel:    StaleLabel(r.Staleness()),
		StaleSeverity: StaleSeverity(r.Staleness()),
		AR:            "AR: " + strconv.Itoa(r.AR()),
		LastActivity:  r.LastActivity,
		ToastMessage:  fmt.Sprintf("Open deal: %s (%s)", r.Name, r.AccountName),
	}
	if r.ClosingDays != nil {
		row.Closing = strconv.Itoa(*r.ClosingDays) + "d"
	}
	if r.LastTouch != nil {
		row.LastTouchDate = orPlaceholder(r.LastTouch.Date)
		row.LastTouchType = r.LastTouch.Type
	}
	return row
}

// GroupHeading is the upper-cased stage label shown above a group.
func GroupHeading(g Group) string {
	return strings.ToUpper(g.Label)
}

// GroupCaption is the per-group count caption, e.g. "2 deal(s)".
func GroupCaption(g Group) string {
	return strconv.Itoa(g.Count()) + " deal(s)"
}

func orPlaceholder(s string) string {
	if strings.TrimSpace(s) == "" {
		return placeholder
	}
	return s
}
