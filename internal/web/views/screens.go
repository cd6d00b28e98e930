package views

import (
	"context"
	"strconv"

	"github.com/a-h/templ"
	"github.com/rpggio/wirecrm/internal/domain/activity"
	"github.com/rpggio/wirecrm/internal/domain/edit"
	"github.com/rpggio/wirecrm/internal/domain/pipeline"
)

// RegisteredScreens lists the screen IDs Screen can render.
var RegisteredScreens = []string{
	"dashboard", "accounts", "account-detail", "pipeline", "leads", "reporting", "admin", "settings",
}

// Screen renders the current screen section.
func Screen(p Page) templ.Component {
	switch p.Screen.ID {
	case "accounts":
		return accountsScreen(p)
	case "account-detail":
		return accountDetailScreen(p)
	case "pipeline":
		return pipelineScreen(p)
	case "leads":
		return leadsScreen(p)
	case "reporting":
		return reportingScreen(p)
	case "admin":
		return adminScreen(p)
	case "settings":
		return settingsScreen(p)
	default:
		return dashboardScreen(p)
	}
}

func section(id string, body func(ctx context.Context, b *writer)) templ.Component {
	return component(func(ctx context.Context, b *writer) {
		b.raw(`<section id="`, esc(id), `" class="screen">`)
		body(ctx, b)
		b.raw(`</section>`)
	})
}

func note(b *writer, text string) {
	b.raw(`<p class="note">`)
	b.text(text)
	b.raw(`</p>`)
}

func dashboardScreen(p Page) templ.Component {
	return section("dashboard", func(ctx context.Context, b *writer) {
		b.render(ctx, Editable(p.Edits, "dash-title", "h1", "Good morning"))
		note(b, "Meetings and tasks saved from the activity modal land in the lists below.")
		b.raw(`<div class="top-actions">`)
		for _, t := range []activity.ActivityType{activity.TypeCall, activity.TypeMeeting, activity.TypeTask} {
			b.raw(`<button class="mini" type="button" data-open-activity="`, string(t), `"`)
			b.raw(` hx-get="/activities/new?type=`, string(t), `" hx-target="#modal">`)
			b.text(activity.ModalTitle(t))
			b.raw(`</button>`)
		}
		b.raw(`</div><div class="grid">`)

		b.raw(`<div class="panel">`)
		b.render(ctx, Editable(p.Edits, "dash-meetings-title", "h2", "Upcoming Meetings"))
		b.render(ctx, ActivityList(activity.ListMeetings, p.Meetings, false))
		b.raw(`</div><div class="panel">`)
		b.render(ctx, Editable(p.Edits, "dash-tasks-title", "h2", "My Tasks"))
		b.render(ctx, ActivityList(activity.ListTasks, p.Tasks, false))
		b.raw(`</div>`)

		total := 0.0
		for _, g := range p.Report.Plan.Groups {
			total += groupValue(g)
		}
		b.raw(`<div class="panel">`)
		b.render(ctx, Editable(p.Edits, "dash-kpi-title", "h2", "Open Pipeline"))
		b.raw(`<div class="kpi"><strong>`)
		b.text(p.Report.Format.Money(total))
		b.raw(`</strong> <span class="muted">`)
		b.text(strconv.Itoa(p.Report.Plan.Total) + " deal(s)")
		b.raw(`</span></div></div>`)

		b.raw(`</div>`)
	})
}

func accountsScreen(p Page) templ.Component {
	return section("accounts", func(ctx context.Context, b *writer) {
		b.render(ctx, Editable(p.Edits, "accounts-title", "h1", "Accounts"))
		b.raw(`<div class="panel"><div class="table">`)
		b.raw(`<div class="thead"><div>Account</div><div class="hide-sm">Industry</div><div>Owner</div><div>Score</div><div class="hide-sm">Deals</div></div>`)
		for _, a := range p.Accounts {
			b.raw(`<div class="trow"><div class="cell"><a class="account-name" hx-post="/accounts/`, pathID(a.ID), `/open" hx-target="#screens">`)
			b.text(a.Name)
			b.raw(`</a></div><div class="cell hide-sm">`)
			b.text(a.Industry)
			b.raw(`</div><div class="cell">`)
			b.text(a.Agent)
			b.raw(`</div><div class="cell"><span class="score-chip">`)
			b.text(strconv.Itoa(a.Score))
			b.raw(`</span></div><div class="cell hide-sm">`)
			b.text(strconv.Itoa(a.OpportunityCount))
			b.raw(`</div></div>`)
		}
		b.raw(`</div></div>`)
	})
}

func accountDetailScreen(p Page) templ.Component {
	return section("account-detail", func(ctx context.Context, b *writer) {
		a := p.Account
		if a == nil {
			b.raw(`<h1 id="acctdName">Account</h1>`)
			note(b, "Open an account from the Accounts list or the pipeline.")
			return
		}
		b.raw(`<h1 id="acctdName">`)
		b.text(a.Name)
		b.raw(`</h1><div class="panel grid">`)
		field := func(label, value string) {
			b.raw(`<div><div class="muted">`)
			b.text(label)
			b.raw(`</div><strong>`)
			b.text(value)
			b.raw(`</strong></div>`)
		}
		field("Account", a.Name)
		field("Industry", a.Industry)
		field("Owner", a.Agent)
		field("Score", strconv.Itoa(a.Score))
		ar, stale := 0, 0
		if a.ARCount != nil {
			ar = *a.ARCount
		}
		if a.StaleDays != nil {
			stale = *a.StaleDays
		}
		field("Open AR", strconv.Itoa(ar))
		if a.LastTouch != nil {
			field("Last Touch", a.LastTouch.Date+" · "+a.LastTouch.Type)
		}
		b.raw(`<div><div class="muted">Stale</div><span class="score-chip `, string(pipeline.StaleSeverity(stale)), `">`)
		b.text(pipeline.StaleLabel(stale))
		b.raw(`</span></div></div>`)

		b.raw(`<div class="panel"><h2>Opportunities</h2>`)
		b.render(ctx, PipelineTable(p.AccountDeals))
		b.raw(`</div>`)
	})
}

func pipelineScreen(p Page) templ.Component {
	return section("pipeline", func(ctx context.Context, b *writer) {
		b.render(ctx, Editable(p.Edits, "pipe-title", "h1", "Pipeline"))
		note(b, "Tabs filter, search narrows by deal, account or stage, and the toggle switches stage grouping.")
		b.raw(`<input id="pipeSearch" type="search" name="query" placeholder="Search deals, accounts, stages" value="`)
		b.raw(esc(p.Pipeline.Plan.State.Query), `"`)
		b.raw(` hx-post="/pipeline/events" hx-trigger="input changed" hx-vals="`, hxVals("event", "query"), `"`)
		b.raw(` hx-include="#pipeState" hx-target="#pipeView" hx-swap="outerHTML">`)
		b.raw(`<div class="panel">`)
		b.render(ctx, PipelineMount(p.Pipeline))
		b.raw(`</div>`)
	})
}

func leadsScreen(p Page) templ.Component {
	return section("leads", func(ctx context.Context, b *writer) {
		b.render(ctx, Editable(p.Edits, "leads-title", "h1", "Leads"))
		note(b, "Lead intake is not wired in the prototype.")
		b.raw(`<div class="panel">`)
		b.render(ctx, Editable(p.Edits, "leads-body", "p", "Inbound leads will be triaged here."))
		b.raw(`</div>`)
	})
}

func reportingScreen(p Page) templ.Component {
	return section("reporting", func(ctx context.Context, b *writer) {
		b.render(ctx, Editable(p.Edits, "reporting-title", "h1", "Reporting"))
		b.raw(`<div class="panel"><div class="table"><div class="thead"><div>Stage</div><div>Deals</div><div>Value</div></div>`)
		for _, g := range p.Report.Plan.Groups {
			b.raw(`<div class="trow"><div class="cell">`)
			b.text(g.Label)
			b.raw(`</div><div class="cell">`)
			b.text(strconv.Itoa(g.Count()))
			b.raw(`</div><div class="cell"><strong>`)
			b.text(p.Report.Format.Money(groupValue(g)))
			b.raw(`</strong></div></div>`)
		}
		b.raw(`</div></div>`)
	})
}

func adminScreen(p Page) templ.Component {
	return section("admin", func(ctx context.Context, b *writer) {
		b.render(ctx, Editable(p.Edits, "admin-title", "h1", "Admin"))
		note(b, "User and role management is out of scope for the prototype.")
		b.raw(`<div class="panel">`)
		b.render(ctx, Editable(p.Edits, "admin-body", "p", "Team members and permissions."))
		b.raw(`</div>`)
	})
}

func settingsScreen(p Page) templ.Component {
	return section("settings", func(ctx context.Context, b *writer) {
		b.render(ctx, Editable(p.Edits, "settings-title", "h1", "Settings"))
		b.raw(`<div class="panel"><h2>Theme</h2><div class="chips">`)
		for _, theme := range []string{edit.ThemeLight, edit.ThemeDark} {
			b.raw(`<button class="chip" type="button" aria-pressed="`, strconv.FormatBool(p.Theme == theme), `"`)
			b.raw(` hx-post="/theme" hx-vals="`, hxVals("theme", theme), `" hx-target="#screens">`)
			b.text(theme)
			b.raw(`</button>`)
		}
		b.raw(`</div></div>`)
	})
}

func groupValue(g pipeline.Group) float64 {
	total := 0.0
	for _, r := range g.Records {
		total += r.Amount()
	}
	return total
}
