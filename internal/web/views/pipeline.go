package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/rpggio/wirecrm/internal/domain/pipeline"
)

// Render mounts the pipeline view into mount, replacing it wholesale. A nil
// mount makes it a no-op.
func Render(ctx context.Context, mount io.Writer, view PipelineView) error {
	if mount == nil {
		return nil
	}
	return PipelineMount(view).Render(ctx, mount)
}

// PipelineMount is the swappable region of the pipeline screen: the carried
// view state, tab bar, grouping toggle and table.
func PipelineMount(view PipelineView) templ.Component {
	return component(func(ctx context.Context, b *writer) {
		state := view.Plan.State
		b.raw(`<div id="pipeView">`)
		b.render(ctx, stateForm(state))

		b.raw(`<div class="top-tabs" role="tablist">`)
		for _, tab := range pipeline.Tabs {
			b.raw(`<button class="tab" type="button" data-pipe-tab="`, esc(string(tab)), `" aria-current="`, current(tab == state.Tab), `"`)
			b.raw(` hx-post="/pipeline/events" hx-vals="`, hxVals("event", "tab", "tab", string(tab)), `"`)
			b.raw(` hx-include="#pipeState" hx-target="#pipeView" hx-swap="outerHTML">`)
			b.text(tab.Label())
			b.raw(`</button>`)
		}
		b.raw(`<button id="pipeToggleGroup" class="mini" type="button" hx-post="/pipeline/events" hx-vals="`, hxVals("event", "group"), `"`)
		b.raw(` hx-include="#pipeState" hx-target="#pipeView" hx-swap="outerHTML">`)
		b.text(state.GroupToggleLabel())
		b.raw(`</button></div>`)

		b.render(ctx, PipelineTable(view))
		b.raw(`</div>`)
	})
}

func stateForm(state pipeline.ViewState) templ.Component {
	return component(func(_ context.Context, b *writer) {
		group := "false"
		if state.GroupByStage {
			group = "true"
		}
		b.raw(`<form id="pipeState" class="hidden">`)
		b.raw(`<input type="hidden" name="state_tab" value="`, esc(string(state.Tab)), `">`)
		b.raw(`<input type="hidden" name="state_query" value="`, esc(state.Query), `">`)
		b.raw(`<input type="hidden" name="state_group" value="`, group, `">`)
		b.raw(`</form>`)
	})
}

// PipelineTable renders the plan as a flat or stage-grouped table.
func PipelineTable(view PipelineView) templ.Component {
	return component(func(ctx context.Context, b *writer) {
		b.raw(`<div id="pipeTable" class="table">`)
		b.raw(`<div class="thead"><div>Opportunity</div><div class="hide-sm">Account</div><div>Stage</div>`)
		b.raw(`<div class="hide-sm">Value</div><div class="hide-sm">Owner</div><div class="hide-sm">Last Touch</div>`)
		b.raw(`<div class="hide-sm">Stale</div><div></div></div>`)

		if view.Plan.Grouped {
			for _, g := range view.Plan.Groups {
				b.raw(`<div class="stage-break"><strong>`)
				b.text(pipeline.GroupHeading(g))
				b.raw(`</strong> <span class="muted">`)
				b.text(pipeline.GroupCaption(g))
				b.raw(`</span></div>`)
				for _, r := range g.Records {
					b.render(ctx, PipelineRow(pipeline.NewRow(r, view.Format)))
				}
			}
		} else {
			for _, r := range view.Plan.Records {
				b.render(ctx, PipelineRow(pipeline.NewRow(r, view.Format)))
			}
		}
		if view.Plan.Total == 0 {
			b.raw(`<div class="empty muted">No deals match.</div>`)
		}
		b.raw(`</div>`)
	})
}

// PipelineRow renders one deal. Clicking the row toasts; clicking the account
// name opens the account detail screen.
func PipelineRow(row pipeline.Row) templ.Component {
	return component(func(_ context.Context, b *writer) {
		b.raw(`<div class="trow" role="button" tabindex="0" data-id="`, esc(row.ID), `"`)
		b.raw(` hx-post="/toast" hx-vals="`, hxVals("message", row.ToastMessage), `" hx-swap="none">`)

		b.raw(`<div class="cell"><div class="opp-name">`)
		b.text(row.Name)
		b.raw(`</div><div class="muted"><span class="tag">`)
		b.text(row.RiskLabel)
		b.raw(`</span> <span>Closing: `)
		b.text(row.Closing)
		b.raw(`</span></div></div>`)

		b.raw(`<div class="cell hide-sm"><a class="account-name" hx-post="/accounts/`, pathID(row.AccountID), `/open"`)
		b.raw(` hx-trigger="click consume" hx-target="#screens">`)
		b.text(row.AccountName)
		b.raw(`</a><div class="muted">`)
		b.text(row.Industry)
		b.raw(`</div></div>`)

		b.raw(`<div class="cell"><span class="score-chip">`)
		b.text(row.Stage)
		b.raw(`</span></div><div class="cell hide-sm"><strong>`)
		b.text(row.Value)
		b.raw(`</strong></div><div class="cell hide-sm">`)
		b.text(row.Owner)
		b.raw(`</div>`)

		b.raw(`<div class="cell hide-sm"><div class="stack"><div><strong>`)
		b.text(row.LastTouchDate)
		b.raw(`</strong></div><div class="muted">`)
		b.text(row.LastTouchType)
		b.raw(`</div></div></div>`)

		b.raw(`<div class="cell hide-sm"><span class="score-chip `, string(row.StaleSeverity), `">`)
		b.text(row.StaleLabel)
		b.raw(`</span></div><div class="ar-pill">`)
		b.text(row.AR)
		b.raw(`</div></div>`)
	})
}
