package views

import (
	"context"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/rpggio/wirecrm/internal/domain/activity"
)

// ActivityList renders one dashboard list. With oob set it replaces the list
// in place during a partial swap.
func ActivityList(list activity.List, items []activity.Item, oob bool) templ.Component {
	return component(func(_ context.Context, b *writer) {
		b.raw(`<div id="list-`, string(list), `" class="list"`)
		if oob {
			b.raw(` hx-swap-oob="true"`)
		}
		b.raw(`>`)
		for _, item := range items {
			b.raw(`<div class="item" role="button" tabindex="0" data-activity-type="`, string(item.Type), `"`)
			b.raw(` hx-get="/activities/`, pathID(item.ID), `/outcome" hx-target="#modal">`)
			b.raw(`<span class="chk" aria-hidden="true"`)
			if item.Type == activity.TypeMeeting {
				b.raw(` style="opacity:0"`)
			}
			b.raw(`></span><div class="item-main"><div class="item-title">`)
			b.text(item.Title)
			b.raw(`</div><div class="item-meta">`)
			b.text(itemMeta(item))
			b.raw(`</div></div><div class="item-right"><button class="mini right-cta" type="button">`)
			b.text(item.ActionLabel())
			b.raw(`</button></div></div>`)
		}
		if len(items) == 0 {
			b.raw(`<div class="empty muted">Nothing here yet.</div>`)
		}
		b.raw(`</div>`)
	})
}

func itemMeta(item activity.Item) string {
	parts := []string{item.Reason}
	for _, v := range []string{item.When, item.Due, item.MeetingDate} {
		if v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, " · ")
}

// ActivityForm is the state of the create modal.
type ActivityForm struct {
	Type        activity.ActivityType
	Reason      string
	Title       string
	When        string
	Due         string
	MeetingDate string
}

// ActivityModal renders the schedule/create modal for f.Type.
func ActivityModal(f ActivityForm) templ.Component {
	return component(func(_ context.Context, b *writer) {
		b.raw(`<div id="activityModal" class="modal open"><form class="modal-card" hx-post="/activities" hx-swap="none">`)
		b.raw(`<h2 id="activityModalTitle">`)
		b.text(activity.ModalTitle(f.Type))
		b.raw(`</h2><input type="hidden" name="type" value="`, string(f.Type), `">`)

		b.raw(`<label>Reason <select id="actReason" name="reason" hx-get="/activities/new" hx-include="closest form" hx-target="#modal">`)
		for _, reason := range activity.Reasons {
			b.raw(`<option value="`, esc(reason), `"`)
			if reason == f.Reason {
				b.raw(` selected`)
			}
			b.raw(`>`)
			b.text(reason)
			b.raw(`</option>`)
		}
		b.raw(`</select></label>`)

		b.raw(`<label>Title <input id="actTitle" name="title" value="`, esc(f.Title), `"></label>`)

		switch f.Type {
		case activity.TypeCall:
			chips(b, "callWhenRow", "when", activity.CallWhenChoices, f.When)
		case activity.TypeTask:
			chips(b, "taskDueRow", "due", activity.TaskDueChoices, f.Due)
		case activity.TypeMeeting:
			b.raw(`<label id="meetingDateRow">Date <input type="date" name="meeting_date" value="`, esc(f.MeetingDate), `"></label>`)
		}

		b.raw(`<div class="top-actions"><button class="mini" type="button" data-modal-close`)
		b.raw(` onclick="document.getElementById('modal').innerHTML=''">Cancel</button>`)
		b.raw(`<button id="actPrimaryBtn" class="mini" type="submit">Save</button></div>`)
		b.raw(`</form></div>`)
	})
}

func chips(b *writer, id, name string, choices []string, selected string) {
	b.raw(`<div id="`, id, `" class="chips">`)
	for _, c := range choices {
		b.raw(`<label class="chip" aria-pressed="`, strconv.FormatBool(c == selected), `">`)
		b.raw(`<input type="radio" name="`, name, `" value="`, esc(c), `"`)
		if c == selected {
			b.raw(` checked`)
		}
		b.raw(`>`)
		b.text(c)
		b.raw(`</label>`)
	}
	b.raw(`</div>`)
}

// OutcomeModal renders the mark-done modal for item.
func OutcomeModal(item activity.Item) templ.Component {
	return component(func(_ context.Context, b *writer) {
		b.raw(`<div id="outcomeModal" class="modal open"><form class="modal-card" hx-post="/activities/`, pathID(item.ID), `/done" hx-swap="none">`)
		b.raw(`<h2>Log Outcome</h2><div class="muted">`)
		b.text(item.Title)
		b.raw(`</div><label>Outcome <select id="outcomeSelect" name="outcome">`)
		for _, o := range activity.OutcomesFor(item.Type) {
			b.raw(`<option value="`, esc(o), `">`)
			b.text(o)
			b.raw(`</option>`)
		}
		b.raw(`</select></label><div class="top-actions"><button class="mini" type="button" data-outcome-close`)
		b.raw(` onclick="document.getElementById('modal').innerHTML=''">Cancel</button>`)
		b.raw(`<button id="outcomeSaveBtn" class="mini" type="submit">Mark done</button></div>`)
		b.raw(`</form></div>`)
	})
}
