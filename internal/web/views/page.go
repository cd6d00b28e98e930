package views

import (
	"github.com/rpggio/wirecrm/internal/domain/account"
	"github.com/rpggio/wirecrm/internal/domain/activity"
	"github.com/rpggio/wirecrm/internal/domain/navigation"
	"github.com/rpggio/wirecrm/internal/domain/pipeline"
)

// Page is everything a full render of one browser's current screen needs.
type Page struct {
	Screen    navigation.Screen
	CanGoBack bool
	Theme     string
	Edits     map[string]string

	Meetings []activity.Item
	Tasks    []activity.Item

	Accounts []account.Summary
	// Account is the account detail subject, nil when none is selected.
	Account *account.Account
	// AccountDeals lists the subject's opportunities.
	AccountDeals PipelineView

	Pipeline PipelineView
	// Report is the all-deals plan grouped by stage.
	Report PipelineView
}

// PipelineView pairs a plan with the formatter used to display it.
type PipelineView struct {
	Plan   pipeline.Plan
	Format pipeline.Formatter
}
