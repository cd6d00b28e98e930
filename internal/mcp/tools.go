package mcp

import (
	"context"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rpggio/wirecrm/internal/domain/account"
	"github.com/rpggio/wirecrm/internal/domain/activity"
	"github.com/rpggio/wirecrm/internal/domain/pipeline"
)

// PipelinePlanInput selects the pipeline view.
type PipelinePlanInput struct {
	Tab   string `json:"tab,omitempty" jsonschema:"tab filter: all, closing, risk or stale (default all)"`
	Query string `json:"query,omitempty" jsonschema:"case-insensitive text matched against deal, account and stage"`
	Flat  bool   `json:"flat,omitempty" jsonschema:"return one value-sorted list instead of stage groups"`
}

// PlanRow is one formatted deal.
type PlanRow struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	AccountID     string  `json:"account_id"`
	AccountName   string  `json:"account_name"`
	Stage         string  `json:"stage"`
	Amount        float64 `json:"amount"`
	Value         string  `json:"value"`
	Owner         string  `json:"owner"`
	Risk          string  `json:"risk"`
	Closing       string  `json:"closing"`
	LastTouch     string  `json:"last_touch"`
	Stale         string  `json:"stale"`
	StaleSeverity string  `json:"stale_severity"`
	AR            string  `json:"ar"`
	LastActivity  string  `json:"last_activity,omitempty"`
}

// PlanGroup is one stage group.
type PlanGroup struct {
	Label   string    `json:"label"`
	Heading string    `json:"heading"`
	Caption string    `json:"caption"`
	Count   int       `json:"count"`
	Rows    []PlanRow `json:"rows"`
}

// PipelinePlanOutput is the rendering plan with display strings resolved.
type PipelinePlanOutput struct {
	Tab     string      `json:"tab"`
	Query   string      `json:"query"`
	Grouped bool        `json:"grouped"`
	Total   int         `json:"total"`
	Groups  []PlanGroup `json:"groups"`
	Rows    []PlanRow   `json:"rows"`
}

// ListAccountsOutput lists the dataset's accounts.
type ListAccountsOutput struct {
	Accounts []account.Summary `json:"accounts"`
}

// LogActivityInput creates an activity as the modal would.
type LogActivityInput struct {
	Type        string `json:"type,omitempty" jsonschema:"call, meeting or task (default call)"`
	Reason      string `json:"reason,omitempty" jsonschema:"one of the fixed reasons (default Follow-up / Next Step)"`
	Title       string `json:"title,omitempty" jsonschema:"title; defaults to '<Type> – <reason>'"`
	When        string `json:"when,omitempty" jsonschema:"call timing: Now, Later Today or Tomorrow"`
	Due         string `json:"due,omitempty" jsonschema:"task due: Today, Tomorrow or Next Week"`
	MeetingDate string `json:"meeting_date,omitempty" jsonschema:"meeting date, free text"`
}

// ActivityOutput is an activity item.
type ActivityOutput struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	List        string `json:"list"`
	Reason      string `json:"reason"`
	Title       string `json:"title"`
	When        string `json:"when,omitempty"`
	Due         string `json:"due,omitempty"`
	MeetingDate string `json:"meeting_date,omitempty"`
	Status      string `json:"status"`
	Outcome     string `json:"outcome,omitempty"`
	CreatedAt   string `json:"created_at"`
	CompletedAt string `json:"completed_at,omitempty"`
}

// ListActivitiesInput filters activities.
type ListActivitiesInput struct {
	List   string `json:"list,omitempty" jsonschema:"meetings or tasks"`
	Status string `json:"status,omitempty" jsonschema:"open or done"`
	Type   string `json:"type,omitempty" jsonschema:"call, meeting or task"`
	Limit  int    `json:"limit,omitempty" jsonschema:"maximum number of results"`
}

// ListActivitiesOutput lists activities newest first.
type ListActivitiesOutput struct {
	Activities []ActivityOutput `json:"activities"`
}

// CompleteActivityInput marks an activity done.
type CompleteActivityInput struct {
	ID      string `json:"id" jsonschema:"activity ID"`
	Outcome string `json:"outcome,omitempty" jsonschema:"outcome offered for the activity type; defaults to the first"`
}

func registerTools(server *sdkmcp.Server, svc Services, format pipeline.Formatter) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "pipeline_plan",
		Description: "Filter, sort and group the deal pipeline the way the pipeline screen shows it",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in PipelinePlanInput) (*sdkmcp.CallToolResult, PipelinePlanOutput, error) {
		data, err := svc.Accounts.Dataset(ctx)
		if err != nil {
			return nil, PipelinePlanOutput{}, toolError(err)
		}
		state := pipeline.ViewState{
			Tab:          pipeline.ParseTab(in.Tab),
			Query:        in.Query,
			GroupByStage: !in.Flat,
		}
		return nil, planOutput(pipeline.Build(data, state), format), nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_accounts",
		Description: "List accounts with owner, score and deal count",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, _ struct{}) (*sdkmcp.CallToolResult, ListAccountsOutput, error) {
		accounts, err := svc.Accounts.List(ctx)
		if err != nil {
			return nil, ListAccountsOutput{}, toolError(err)
		}
		if accounts == nil {
			accounts = []account.Summary{}
		}
		return nil, ListAccountsOutput{Accounts: accounts}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "log_activity",
		Description: "Schedule a call or meeting, or create a task, on the dashboard lists",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in LogActivityInput) (*sdkmcp.CallToolResult, ActivityOutput, error) {
		item, err := svc.Activities.Create(ctx, getBrowserID(ctx), activity.CreateRequest{
			Type:        activity.ParseType(in.Type),
			Reason:      in.Reason,
			Title:       in.Title,
			When:        in.When,
			Due:         in.Due,
			MeetingDate: in.MeetingDate,
		})
		if err != nil {
			return nil, ActivityOutput{}, toolError(err)
		}
		return nil, activityOutput(*item), nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_activities",
		Description: "List dashboard activities, newest first",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in ListActivitiesInput) (*sdkmcp.CallToolResult, ListActivitiesOutput, error) {
		opts := activity.ListActivityOptions{Limit: in.Limit}
		if in.List != "" {
			list := activity.List(in.List)
			opts.List = &list
		}
		if in.Status != "" {
			status := activity.Status(in.Status)
			opts.Status = &status
		}
		if in.Type != "" {
			typ := activity.ActivityType(in.Type)
			opts.Type = &typ
		}
		items, err := svc.Activities.List(ctx, getBrowserID(ctx), opts)
		if err != nil {
			return nil, ListActivitiesOutput{}, toolError(err)
		}
		out := ListActivitiesOutput{Activities: make([]ActivityOutput, 0, len(items))}
		for _, item := range items {
			out.Activities = append(out.Activities, activityOutput(item))
		}
		return nil, out, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "complete_activity",
		Description: "Mark an activity done with an outcome, removing it from the open lists",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in CompleteActivityInput) (*sdkmcp.CallToolResult, ActivityOutput, error) {
		item, err := svc.Activities.MarkDone(ctx, getBrowserID(ctx), in.ID, in.Outcome)
		if err != nil {
			return nil, ActivityOutput{}, toolError(err)
		}
		return nil, activityOutput(*item), nil
	})
}

func planOutput(plan pipeline.Plan, format pipeline.Formatter) PipelinePlanOutput {
	out := PipelinePlanOutput{
		Tab:     string(plan.State.Tab),
		Query:   plan.State.Query,
		Grouped: plan.Grouped,
		Total:   plan.Total,
		Groups:  []PlanGroup{},
		Rows:    []PlanRow{},
	}
	if !plan.Grouped {
		out.Rows = planRows(plan.Records, format)
		return out
	}
	for _, g := range plan.Groups {
		out.Groups = append(out.Groups, PlanGroup{
			Label:   g.Label,
			Heading: pipeline.GroupHeading(g),
			Caption: pipeline.GroupCaption(g),
			Count:   g.Count(),
			Rows:    planRows(g.Records, format),
		})
	}
	return out
}

func planRows(records []pipeline.Record, format pipeline.Formatter) []PlanRow {
	rows := make([]PlanRow, 0, len(records))
	for _, r := range records {
		row := pipeline.NewRow(r, format)
		lastTouch := row.LastTouchDate
		if row.LastTouchType != "" {
			lastTouch += " · " + row.LastTouchType
		}
		rows = append(rows, PlanRow{
			ID:            row.ID,
			Name:          row.Name,
			AccountID:     row.AccountID,
			AccountName:   row.AccountName,
			Stage:         row.Stage,
			Amount:        r.Amount(),
			Value:         row.Value,
			Owner:         row.Owner,
			Risk:          row.RiskLabel,
			Closing:       row.Closing,
			LastTouch:     lastTouch,
			Stale:         row.StaleLabel,
			StaleSeverity: string(row.StaleSeverity),
			AR:            row.AR,
			LastActivity:  row.LastActivity,
		})
	}
	return rows
}

func activityOutput(item activity.Item) ActivityOutput {
	out := ActivityOutput{
		ID:          item.ID,
		Type:        string(item.Type),
		List:        string(item.List),
		Reason:      item.Reason,
		Title:       item.Title,
		When:        item.When,
		Due:         item.Due,
		MeetingDate: item.MeetingDate,
		Status:      string(item.Status),
		Outcome:     item.Outcome,
		CreatedAt:   item.CreatedAt.Format(time.RFC3339),
	}
	if item.CompletedAt != nil {
		out.CompletedAt = item.CompletedAt.Format(time.RFC3339)
	}
	return out
}
