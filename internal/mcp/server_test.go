package mcp

import (
	"context"
	"encoding/json"
	"testing"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rpggio/wirecrm/internal/demo"
	"github.com/rpggio/wirecrm/internal/domain/account"
	"github.com/rpggio/wirecrm/internal/domain/activity"
	"github.com/rpggio/wirecrm/internal/domain/pipeline"
	"github.com/rpggio/wirecrm/internal/sqlite"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *sdkmcp.Server {
	t.Helper()

	db, err := sqlite.New(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())
	t.Cleanup(func() { _ = db.Close() })

	provider, err := demo.New()
	require.NoError(t, err)

	return NewServer(Config{
		Services: Services{
			Accounts:   account.NewService(provider, nil),
			Activities: activity.NewService(sqlite.NewActivityRepository(db), nil),
		},
		Formatter: pipeline.NewFormatter("en-US"),
	})
}

func connect(t *testing.T, server *sdkmcp.Server) *sdkmcp.ClientSession {
	t.Helper()
	ctx := context.Background()

	serverTransport, clientTransport := sdkmcp.NewInMemoryTransports()
	ss, err := server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ss.Close() })

	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "test-client", Version: "0.0.1"}, nil)
	cs, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cs.Close() })
	return cs
}

func callTool(t *testing.T, cs *sdkmcp.ClientSession, name string, args map[string]any, out any) *sdkmcp.CallToolResult {
	t.Helper()
	res, err := cs.CallTool(context.Background(), &sdkmcp.CallToolParams{Name: name, Arguments: args})
	require.NoError(t, err)
	require.NotEmpty(t, res.Content)
	if out != nil && !res.IsError {
		text, ok := res.Content[0].(*sdkmcp.TextContent)
		require.True(t, ok, "expected text content")
		require.NoError(t, json.Unmarshal([]byte(text.Text), out))
	}
	return res
}

func errorText(t *testing.T, res *sdkmcp.CallToolResult) string {
	t.Helper()
	require.True(t, res.IsError)
	text, ok := res.Content[0].(*sdkmcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestServer_ListsToolsAndDocs(t *testing.T) {
	cs := connect(t, newTestServer(t))
	ctx := context.Background()

	tools, err := cs.ListTools(ctx, nil)
	require.NoError(t, err)
	var names []string
	for _, tool := range tools.Tools {
		names = append(names, tool.Name)
	}
	require.ElementsMatch(t, []string{
		"pipeline_plan", "list_accounts", "log_activity", "list_activities", "complete_activity",
	}, names)

	res, err := cs.ReadResource(ctx, &sdkmcp.ReadResourceParams{URI: "wirecrm://docs/pipeline"})
	require.NoError(t, err)
	require.Len(t, res.Contents, 1)
	require.Contains(t, res.Contents[0].Text, "## Tabs")
}

func TestPipelinePlan_GroupedByDefault(t *testing.T) {
	cs := connect(t, newTestServer(t))

	var out PipelinePlanOutput
	callTool(t, cs, "pipeline_plan", map[string]any{}, &out)

	require.Equal(t, "all", out.Tab)
	require.True(t, out.Grouped)
	require.Equal(t, 4, out.Total)
	require.Empty(t, out.Rows)
	require.Len(t, out.Groups, 2)

	require.Equal(t, "DISCOVERY", out.Groups[0].Heading)
	require.Equal(t, "2 deal(s)", out.Groups[0].Caption)
	require.Equal(t, "opp_md_1", out.Groups[0].Rows[0].ID)
	require.Equal(t, "$220,000", out.Groups[0].Rows[0].Value)
	require.Equal(t, "Hot", out.Groups[0].Rows[0].Risk)
	require.Equal(t, "24d", out.Groups[0].Rows[0].Stale)
	require.Equal(t, "bad", out.Groups[0].Rows[0].StaleSeverity)

	require.Equal(t, "Quote", out.Groups[1].Label)
	require.Equal(t, "opp_wf_1", out.Groups[1].Rows[0].ID)
}

func TestPipelinePlan_FlatAndFiltered(t *testing.T) {
	cs := connect(t, newTestServer(t))

	var flat PipelinePlanOutput
	callTool(t, cs, "pipeline_plan", map[string]any{"flat": true}, &flat)
	require.False(t, flat.Grouped)
	require.Empty(t, flat.Groups)
	var ids []string
	for _, row := range flat.Rows {
		ids = append(ids, row.ID)
	}
	require.Equal(t, []string{"opp_md_1", "opp_wf_1", "opp_nb_1", "opp_nb_2"}, ids)

	var risk PipelinePlanOutput
	callTool(t, cs, "pipeline_plan", map[string]any{"tab": "risk", "flat": true}, &risk)
	require.Len(t, risk.Rows, 1)
	require.Equal(t, "Mooring Digital", risk.Rows[0].AccountName)

	var query PipelinePlanOutput
	callTool(t, cs, "pipeline_plan", map[string]any{"query": "  NAS  ", "flat": true}, &query)
	require.Len(t, query.Rows, 1)
	require.Equal(t, "opp_nb_1", query.Rows[0].ID)
	require.Equal(t, "Jan 08 · Call", query.Rows[0].LastTouch)

	var unknown PipelinePlanOutput
	callTool(t, cs, "pipeline_plan", map[string]any{"tab": "bogus"}, &unknown)
	require.Equal(t, "all", unknown.Tab)
	require.Equal(t, 4, unknown.Total)
}

func TestListAccounts(t *testing.T) {
	cs := connect(t, newTestServer(t))

	var out ListAccountsOutput
	callTool(t, cs, "list_accounts", map[string]any{}, &out)
	require.Len(t, out.Accounts, 3)
	require.Equal(t, "Northbound Labs", out.Accounts[0].Name)
	require.Equal(t, 2, out.Accounts[0].OpportunityCount)
}

func TestActivityTools_Lifecycle(t *testing.T) {
	cs := connect(t, newTestServer(t))

	var created ActivityOutput
	callTool(t, cs, "log_activity", map[string]any{"type": "meeting", "meeting_date": "Fri"}, &created)
	require.NotEmpty(t, created.ID)
	require.Equal(t, "meetings", created.List)
	require.Equal(t, "Meeting – Follow-up / Next Step", created.Title)
	require.Equal(t, "open", created.Status)

	var task ActivityOutput
	callTool(t, cs, "log_activity", map[string]any{"type": "task", "title": "Send quote"}, &task)
	require.Equal(t, "tasks", task.List)
	require.Equal(t, "Today", task.Due)

	var listed ListActivitiesOutput
	callTool(t, cs, "list_activities", map[string]any{"status": "open"}, &listed)
	require.Len(t, listed.Activities, 2)
	require.Equal(t, task.ID, listed.Activities[0].ID)

	var done ActivityOutput
	callTool(t, cs, "complete_activity", map[string]any{"id": created.ID}, &done)
	require.Equal(t, "done", done.Status)
	require.Equal(t, "Held", done.Outcome)
	require.NotEmpty(t, done.CompletedAt)

	callTool(t, cs, "list_activities", map[string]any{"list": "meetings", "status": "open"}, &listed)
	require.Empty(t, listed.Activities)

	res := callTool(t, cs, "complete_activity", map[string]any{"id": created.ID}, nil)
	require.Contains(t, errorText(t, res), "ALREADY_DONE")
}

func TestActivityTools_Errors(t *testing.T) {
	cs := connect(t, newTestServer(t))

	res := callTool(t, cs, "complete_activity", map[string]any{"id": "missing"}, nil)
	require.Contains(t, errorText(t, res), "ACTIVITY_NOT_FOUND")

	res = callTool(t, cs, "log_activity", map[string]any{"reason": "Lunch"}, nil)
	require.Contains(t, errorText(t, res), "INVALID_INPUT")

	var call ActivityOutput
	callTool(t, cs, "log_activity", map[string]any{"type": "call"}, &call)
	res = callTool(t, cs, "complete_activity", map[string]any{"id": call.ID, "outcome": "Held"}, nil)
	require.Contains(t, errorText(t, res), "INVALID_OUTCOME")
}

func TestMapError(t *testing.T) {
	require.Nil(t, MapError(nil))
	require.Nil(t, MapError(context.Canceled))
	require.Equal(t, "ACCOUNT_NOT_FOUND", MapError(account.ErrAccountNotFound).Code)
	require.Equal(t, "ACTIVITY_NOT_FOUND", MapError(activity.ErrActivityNotFound).Code)
}
