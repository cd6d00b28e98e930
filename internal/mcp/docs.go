package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `wirecrm is a CRM dashboard prototype. Its tools read the demo pipeline and manage the dashboard's activity lists.

Workflow:
1) Orient: list_accounts, then pipeline_plan (tab all, grouped by stage).
2) Narrow: pipeline_plan with tab closing (closes within 30 days), risk (hot deals) or stale (no touch for 14+ days), plus an optional query.
3) Act: log_activity to put a call, meeting or task on the dashboard; complete_activity with an outcome when it is done.

Docs: wirecrm://docs/pipeline explains filters, grouping and formatting.
`

type docResource struct {
	URI         string
	Name        string
	Title       string
	Description string
	Content     string
}

var docResources = []docResource{
	{
		URI:         "wirecrm://docs/pipeline",
		Name:        "docs_pipeline",
		Title:       "Pipeline view rules",
		Description: "How the pipeline is filtered, searched, sorted, grouped and formatted.",
		Content: `# Pipeline view

Every opportunity is listed with its account's name, industry, owner, AR count, last touch and staleness.

## Tabs

- all: every deal.
- closing: closes within 30 days. Deals without a closing date are excluded.
- risk: risk is hot.
- stale: the account was last touched 14 or more days ago. Missing staleness counts as 0.

## Search

The query is trimmed and lower-cased. A deal matches when its name, account name or stage contains it. An empty query matches everything.

## Ordering

- Flat: by value, highest first. Equal values keep dataset order.
- Grouped: groups appear as Discovery, Quote, PO, Closed, then any other stage alphabetically. Deals without a stage form the "Unstaged" group. Each group is sorted by value, highest first.

## Formatting

- Value: whole dollars, e.g. $120,000. Missing values read $0.
- Risk: Cool, Warm or Hot. Unknown or missing risk reads Cool.
- Stale: the raw day count, e.g. 24d, rated good (under 7), warn (7 to 13) or bad (14 or more).
- Closing: e.g. 21d, or — when unknown.
`,
	},
}

func registerDocResources(server *sdkmcp.Server) {
	for _, doc := range docResources {
		server.AddResource(&sdkmcp.Resource{
			URI:         doc.URI,
			Name:        doc.Name,
			Title:       doc.Title,
			Description: doc.Description,
			MIMEType:    "text/markdown",
			Size:        int64(len(doc.Content)),
		}, func(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
			uri := doc.URI
			if req != nil && req.Params != nil && req.Params.URI != "" {
				uri = req.Params.URI
			}
			return &sdkmcp.ReadResourceResult{
				Contents: []*sdkmcp.ResourceContents{{
					URI:      uri,
					MIMEType: "text/markdown",
					Text:     doc.Content,
				}},
			}, nil
		})
	}
}
