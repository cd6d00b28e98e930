package web_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/rpggio/wirecrm/internal/domain/activity"
	"github.com/rpggio/wirecrm/internal/testserver"
	"github.com/rpggio/wirecrm/internal/web"
	"github.com/stretchr/testify/require"
)

type response struct {
	status  int
	header  http.Header
	body    string
	trigger map[string]any
}

func do(t *testing.T, ts *testserver.TestServer, client *http.Client, method, path string, form url.Values) response {
	t.Helper()

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req, err := http.NewRequest(method, ts.Server.URL+path, body)
	require.NoError(t, err)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if method != http.MethodGet {
		req.Header.Set(web.HeaderRequest, "true")
	}

	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	out := response{status: resp.StatusCode, header: resp.Header, body: string(data)}
	if raw := resp.Header.Get(web.HeaderTrigger); raw != "" {
		require.NoError(t, json.Unmarshal([]byte(raw), &out.trigger))
	}
	return out
}

func TestHealth(t *testing.T) {
	ts := testserver.New(t)
	resp := do(t, ts, ts.Browser(t), http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, resp.status)
	require.Equal(t, "ok", resp.body)
}

func TestIndex_IssuesBrowserCookie(t *testing.T) {
	ts := testserver.New(t)
	client := ts.Browser(t)

	resp := do(t, ts, client, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, resp.status)
	require.Contains(t, resp.body, "<!doctype html>")
	require.Contains(t, resp.body, `<section id="dashboard" class="screen">`)
	require.Contains(t, resp.body, "Dashboard · Wire CRM")

	id := ts.BrowserID(client)
	require.NotEmpty(t, id)

	do(t, ts, client, http.MethodGet, "/", nil)
	require.Equal(t, id, ts.BrowserID(client))
}

func TestNavigation(t *testing.T) {
	ts := testserver.New(t)
	client := ts.Browser(t)
	do(t, ts, client, http.MethodGet, "/", nil)

	resp := do(t, ts, client, http.MethodPost, "/nav/pipeline", nil)
	require.Equal(t, http.StatusOK, resp.status)
	require.Contains(t, resp.body, `<section id="pipeline" class="screen">`)
	require.Contains(t, resp.body, `id="nav" class="sidebar" hx-swap-oob="true"`)
	require.NotContains(t, resp.body, "<!doctype html>")
	require.Contains(t, resp.body, "<strong>DISCOVERY</strong>")
	require.Contains(t, resp.body, "Group: Stage")

	resp = do(t, ts, client, http.MethodPost, "/nav/nowhere", nil)
	require.Equal(t, http.StatusOK, resp.status)
	require.Equal(t, "none", resp.header.Get(web.HeaderReswap))
	require.Equal(t, "No screen found: nowhere", resp.trigger[web.EventToast])

	resp = do(t, ts, client, http.MethodPost, "/nav/back", nil)
	require.Contains(t, resp.body, `<section id="dashboard" class="screen">`)

	resp = do(t, ts, client, http.MethodPost, "/nav/back", nil)
	require.Contains(t, resp.body, `<section id="dashboard" class="screen">`)
}

func TestNavigation_PlainPostRedirects(t *testing.T) {
	ts := testserver.New(t)
	client := ts.Browser(t)

	req, err := http.NewRequest(http.MethodPost, ts.Server.URL+"/nav/accounts", nil)
	require.NoError(t, err)
	resp, err := client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	page := do(t, ts, client, http.MethodGet, "/", nil)
	require.Contains(t, page.body, `<section id="accounts" class="screen">`)
}

func TestScreenLink(t *testing.T) {
	ts := testserver.New(t)
	client := ts.Browser(t)

	resp := do(t, ts, client, http.MethodGet, "/screens/reporting", nil)
	require.Equal(t, http.StatusOK, resp.status)
	require.Contains(t, resp.body, "<!doctype html>")
	require.Contains(t, resp.body, `<section id="reporting" class="screen">`)
	require.Contains(t, resp.body, "$340,000")

	resp = do(t, ts, client, http.MethodGet, "/screens/nowhere", nil)
	require.Equal(t, http.StatusNotFound, resp.status)
}

func TestOpenAccount(t *testing.T) {
	ts := testserver.New(t)
	client := ts.Browser(t)

	resp := do(t, ts, client, http.MethodPost, "/accounts/acct_md/open", nil)
	require.Equal(t, http.StatusOK, resp.status)
	require.Equal(t, "Opened: Mooring Digital", resp.trigger[web.EventToast])
	require.Contains(t, resp.body, `<section id="account-detail" class="screen">`)
	require.Contains(t, resp.body, "Bid: Storage + Support")
	require.NotContains(t, resp.body, "Cluster Expansion")

	resp = do(t, ts, client, http.MethodPost, "/accounts/missing/open", nil)
	require.Equal(t, http.StatusNotFound, resp.status)
	require.Equal(t, "account not found", resp.trigger[web.EventToast])
}

func TestPipelineEvents(t *testing.T) {
	ts := testserver.New(t)
	client := ts.Browser(t)

	state := url.Values{"state_tab": {"all"}, "state_query": {""}, "state_group": {"true"}}

	form := cloneForm(state)
	form.Set("event", "group")
	resp := do(t, ts, client, http.MethodPost, "/pipeline/events", form)
	require.Equal(t, http.StatusOK, resp.status)
	require.True(t, strings.HasPrefix(resp.body, `<div id="pipeView">`))
	require.Contains(t, resp.body, "Group: Off")
	require.Contains(t, resp.body, `name="state_group" value="false"`)
	require.NotContains(t, resp.body, "stage-break")

	form = cloneForm(state)
	form.Set("event", "tab")
	form.Set("tab", "risk")
	resp = do(t, ts, client, http.MethodPost, "/pipeline/events", form)
	require.Contains(t, resp.body, `data-pipe-tab="risk" aria-current="page"`)
	require.Contains(t, resp.body, "Bid: Storage + Support")
	require.NotContains(t, resp.body, "Cluster Expansion")

	form = cloneForm(state)
	form.Set("event", "query")
	form.Set("query", "  EXPANSION ")
	resp = do(t, ts, client, http.MethodPost, "/pipeline/events", form)
	require.Contains(t, resp.body, "Cluster Expansion")
	require.Contains(t, resp.body, "Backup Expansion")
	require.NotContains(t, resp.body, "NAS Refresh")

	again := do(t, ts, client, http.MethodPost, "/pipeline/events", form)
	require.Equal(t, resp.body, again.body)
}

func TestToast(t *testing.T) {
	ts := testserver.New(t)
	client := ts.Browser(t)

	resp := do(t, ts, client, http.MethodPost, "/toast", url.Values{"message": {"Open deal: X (Y)"}})
	require.Equal(t, http.StatusNoContent, resp.status)
	require.Equal(t, "Open deal: X (Y)", resp.trigger[web.EventToast])

	resp = do(t, ts, client, http.MethodPost, "/toast", url.Values{})
	require.Equal(t, "Action", resp.trigger[web.EventToast])

	require.Equal(t, []string{"Open deal: X (Y)", "Action"}, ts.Toasts.Messages())
}

func TestActivityModal(t *testing.T) {
	ts := testserver.New(t)
	client := ts.Browser(t)

	resp := do(t, ts, client, http.MethodGet, "/activities/new?type=call&reason="+url.QueryEscape("Demo / Walkthrough"), nil)
	require.Equal(t, http.StatusOK, resp.status)
	require.Contains(t, resp.body, "Schedule Call")
	require.Contains(t, resp.body, `value="Call – Demo / Walkthrough"`)
	require.Contains(t, resp.body, `value="Now" checked`)

	resp = do(t, ts, client, http.MethodGet, "/activities/new?type=meeting", nil)
	require.Contains(t, resp.body, "Schedule Meeting")
	require.Contains(t, resp.body, "meetingDateRow")
}

func TestActivityLifecycle(t *testing.T) {
	ts := testserver.New(t)
	client := ts.Browser(t)
	do(t, ts, client, http.MethodGet, "/", nil)

	resp := do(t, ts, client, http.MethodPost, "/activities", url.Values{"type": {"meeting"}, "meeting_date": {"2026-10-20"}})
	require.Equal(t, http.StatusOK, resp.status)
	require.Equal(t, "Saved (prototype)", resp.trigger[web.EventToast])
	require.Equal(t, true, resp.trigger[web.EventCloseModal])
	require.Contains(t, resp.body, `id="list-meetings" class="list" hx-swap-oob="true"`)
	require.Contains(t, resp.body, "Meeting – Follow-up / Next Step")

	meetings, err := ts.Services.Activities.ListOpen(context.Background(), ts.BrowserID(client), activity.ListMeetings)
	require.NoError(t, err)
	require.Len(t, meetings, 1)
	id := meetings[0].ID

	resp = do(t, ts, client, http.MethodGet, "/activities/"+id+"/outcome", nil)
	require.Contains(t, resp.body, `<option value="No show">`)

	resp = do(t, ts, client, http.MethodPost, "/activities/"+id+"/done", url.Values{"outcome": {"Voicemail"}})
	require.Equal(t, http.StatusUnprocessableEntity, resp.status)
	require.Equal(t, "none", resp.header.Get(web.HeaderReswap))

	resp = do(t, ts, client, http.MethodPost, "/activities/"+id+"/done", url.Values{"outcome": {"Held"}})
	require.Equal(t, http.StatusOK, resp.status)
	require.Equal(t, "Marked done (prototype)", resp.trigger[web.EventToast])
	require.NotContains(t, resp.body, "Meeting – Follow-up / Next Step")

	resp = do(t, ts, client, http.MethodPost, "/activities/"+id+"/done", url.Values{"outcome": {"Held"}})
	require.Equal(t, http.StatusConflict, resp.status)

	resp = do(t, ts, client, http.MethodPost, "/activities", url.Values{"type": {"task"}, "reason": {"Lunch"}})
	require.Equal(t, http.StatusBadRequest, resp.status)
}

func TestActivities_IsolatedPerBrowser(t *testing.T) {
	ts := testserver.New(t)
	alice, bob := ts.Browser(t), ts.Browser(t)

	do(t, ts, alice, http.MethodPost, "/activities", url.Values{"type": {"task"}, "title": {"Send quote"}})

	require.Contains(t, do(t, ts, alice, http.MethodGet, "/", nil).body, "Send quote")
	require.NotContains(t, do(t, ts, bob, http.MethodGet, "/", nil).body, "Send quote")
}

func TestInlineEditsAndTheme(t *testing.T) {
	ts := testserver.New(t)
	client := ts.Browser(t)

	resp := do(t, ts, client, http.MethodPost, "/edits", url.Values{"id": {"dash-title"}, "text": {"Hello team"}})
	require.Equal(t, http.StatusNoContent, resp.status)
	require.Contains(t, do(t, ts, client, http.MethodGet, "/", nil).body, "Hello team")

	resp = do(t, ts, client, http.MethodPost, "/edits", url.Values{"text": {"orphan"}})
	require.Equal(t, http.StatusBadRequest, resp.status)

	resp = do(t, ts, client, http.MethodPost, "/theme", url.Values{"theme": {"dark"}})
	require.Equal(t, http.StatusOK, resp.status)
	require.Equal(t, "dark", resp.trigger[web.EventSetTheme])
	require.Contains(t, do(t, ts, client, http.MethodGet, "/", nil).body, `data-theme="dark"`)

	resp = do(t, ts, client, http.MethodPost, "/theme", url.Values{"theme": {"neon"}})
	require.Equal(t, http.StatusUnprocessableEntity, resp.status)
	require.Equal(t, "invalid theme", resp.trigger[web.EventToast])
}

func cloneForm(v url.Values) url.Values {
	out := url.Values{}
	for k, vals := range v {
		out[k] = append([]string(nil), vals...)
	}
	return out
}
