package views

import (
	"context"

	"github.com/a-h/templ"
	"github.com/rpggio/wirecrm/internal/domain/navigation"
)

const htmxSrc = "https://unpkg.com/htmx.org@2.0.4"

// Layout is the full document: sidebar, top bar, the current screen and the
// shared modal and toast hosts.
func Layout(p Page) templ.Component {
	return component(func(ctx context.Context, b *writer) {
		b.raw(`<!doctype html><html lang="en"`)
		if p.Theme != "" {
			b.raw(` data-theme="`, esc(p.Theme), `"`)
		}
		b.raw(`><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
		b.raw(`<title>`, esc(Title(p)), `</title>`)
		b.raw(`<script src="`, htmxSrc, `"></script><style>`, stylesheet, `</style></head>`)
		b.raw(`<body><div class="app">`)
		b.render(ctx, Nav(p, false))
		b.raw(`<div class="main-col"><header class="topbar">`)
		b.render(ctx, BackButton(p, false))
		b.raw(`<div class="brand">`)
		b.render(ctx, Editable(p.Edits, "brand-name", "span", "Wire CRM"))
		b.raw(`</div><div class="top-actions">`)
		b.raw(`<button id="toggleNotesBtn" class="mini" type="button" onclick="document.body.classList.toggle('hide-notes')">Notes</button>`)
		b.raw(`</div></header><main id="screens">`)
		b.render(ctx, Screen(p))
		b.raw(`</main></div></div>`)
		b.raw(`<div id="modal"></div><div id="toast" class="toast" role="status" aria-live="polite"></div>`)
		b.raw(`<script>`, clientScript, `</script></body></html>`)
	})
}

// Title is the document title for the current screen.
func Title(p Page) string {
	return p.Screen.Title + " · Wire CRM"
}

// Nav renders the sidebar. With oob set it replaces the existing sidebar
// during a partial swap.
func Nav(p Page, oob bool) templ.Component {
	return component(func(_ context.Context, b *writer) {
		b.raw(`<nav id="nav" class="sidebar"`)
		if oob {
			b.raw(` hx-swap-oob="true"`)
		}
		b.raw(`>`)
		for _, s := range navigation.Screens {
			if !s.InNav {
				continue
			}
			b.raw(`<button type="button" data-go="`, esc(s.ID), `" aria-current="`, current(s.ID == p.Screen.ID), `"`)
			b.raw(` hx-post="/nav/`, pathID(s.ID), `" hx-target="#screens">`)
			b.text(s.Title)
			b.raw(`</button>`)
		}
		b.raw(`</nav>`)
	})
}

// BackButton renders the history back control, disabled on an empty history.
func BackButton(p Page, oob bool) templ.Component {
	return component(func(_ context.Context, b *writer) {
		b.raw(`<button id="back" class="mini" type="button" hx-post="/nav/back" hx-target="#screens"`)
		if oob {
			b.raw(` hx-swap-oob="true"`)
		}
		if !p.CanGoBack {
			b.raw(` disabled`)
		}
		b.raw(`>Back</button>`)
	})
}

// ScreenSwap is the partial response for a navigation: the new screen plus
// out-of-band updates for the sidebar, back button and title.
func ScreenSwap(p Page) templ.Component {
	return component(func(ctx context.Context, b *writer) {
		b.raw(`<title>`, esc(Title(p)), `</title>`)
		b.render(ctx, Screen(p))
		b.render(ctx, Nav(p, true))
		b.render(ctx, BackButton(p, true))
	})
}

// Editable renders a contenteditable element whose text is persisted per
// browser. Saved text replaces def.
func Editable(edits map[string]string, id, tag, def string) templ.Component {
	return component(func(_ context.Context, b *writer) {
		text := def
		if saved, ok := edits[id]; ok {
			text = saved
		}
		b.raw(`<`, tag, ` data-edit-id="`, esc(id), `" contenteditable="true" spellcheck="false"`)
		b.raw(` hx-post="/edits" hx-trigger="input delay:250ms, blur" hx-swap="none"`)
		b.raw(` hx-vals="`, esc("js:{id: "+jsString(id)+", text: this.innerText}"), `">`)
		b.text(text)
		b.raw(`</`, tag, `>`)
	})
}

const clientScript = `
(function () {
  var toast = document.getElementById("toast");
  var timer;
  document.body.addEventListener("showToast", function (e) {
    if (!toast) return;
    toast.textContent = e.detail.value;
    toast.classList.add("show");
    clearTimeout(timer);
    timer = setTimeout(function () { toast.classList.remove("show"); }, 1400);
  });
  document.body.addEventListener("setTheme", function (e) {
    document.documentElement.setAttribute("data-theme", e.detail.value);
  });
  document.body.addEventListener("closeModal", function () {
    document.getElementById("modal").innerHTML = "";
  });
  document.body.addEventListener("keydown", function (e) {
    if (e.key === "Enter" && e.target.isContentEditable) {
      e.preventDefault();
      e.target.blur();
    }
  });
})();
`

const stylesheet = `
:root{--bg:#f6f7f9;--panel:#fff;--ink:#1c1f24;--muted:#6b7280;--stroke:#d8dce3;--accent:#2f6fed}
[data-theme="dark"]{--bg:#15171b;--panel:#1e2127;--ink:#e8eaee;--muted:#9aa1ad;--stroke:#343a44;--accent:#7aa2ff}
*{box-sizing:border-box}
body{margin:0;font:14px/1.4 system-ui,sans-serif;background:var(--bg);color:var(--ink)}
.app{display:flex;min-height:100vh}
.sidebar{width:180px;padding:16px 8px;border-right:1px solid var(--stroke);display:flex;flex-direction:column;gap:4px}
.sidebar button{text-align:left;background:none;border:0;padding:8px 10px;border-radius:8px;color:inherit;cursor:pointer}
.sidebar button[aria-current="page"]{background:var(--panel);font-weight:700}
.main-col{flex:1;display:flex;flex-direction:column}
.topbar{display:flex;align-items:center;gap:12px;padding:10px 16px;border-bottom:1px solid var(--stroke)}
.brand{font-weight:900}
.top-actions{margin-left:auto;display:flex;gap:8px}
main{padding:16px}
.panel{background:var(--panel);border:1px solid var(--stroke);border-radius:12px;padding:12px;margin-bottom:12px}
.grid{display:grid;grid-template-columns:repeat(auto-fit,minmax(240px,1fr));gap:12px}
.muted{color:var(--muted)}
.note{border-left:3px solid var(--accent);padding-left:8px;color:var(--muted)}
body.hide-notes .note{display:none}
.mini,.chip,.tab{border:1px solid var(--stroke);background:var(--panel);color:inherit;border-radius:999px;padding:4px 10px;cursor:pointer}
.chip[aria-pressed="true"],.tab[aria-current="page"]{background:var(--accent);color:#fff}
.top-tabs{display:flex;gap:6px;margin:8px 0}
.table{display:flex;flex-direction:column}
.thead,.trow{display:grid;grid-template-columns:2fr 1.5fr 1fr 1fr 1fr 1fr .7fr .7fr;gap:8px;padding:8px;align-items:center}
.thead{font-weight:700;border-bottom:1px solid var(--stroke)}
.trow{border-bottom:1px solid var(--stroke);cursor:pointer}
.stage-break{padding:12px 8px 4px}
.stage-break strong{font-size:12px;letter-spacing:.12em}
.tag{border:1px solid var(--stroke);padding:2px 8px;border-radius:999px}
.score-chip{border:1px solid var(--stroke);padding:2px 8px;border-radius:999px}
.score-chip.good{border-color:#3a9a5b}.score-chip.warn{border-color:#d19a22}.score-chip.bad{border-color:#d0433a}
.ar-pill{font-size:12px;color:var(--muted)}
.account-name{cursor:pointer;text-decoration:underline}
.list .item{display:flex;align-items:center;gap:8px;padding:8px;border-bottom:1px solid var(--stroke);cursor:pointer}
.item-main{flex:1}.item-meta{color:var(--muted);font-size:12px}
.modal{position:fixed;inset:0;background:rgba(0,0,0,.35);display:flex;align-items:center;justify-content:center}
.modal-card{background:var(--panel);border-radius:12px;padding:16px;width:min(460px,92vw);display:flex;flex-direction:column;gap:10px}
.toast{position:fixed;bottom:16px;left:50%;transform:translateX(-50%);background:var(--ink);color:var(--bg);padding:8px 14px;border-radius:8px;opacity:0;transition:opacity .2s}
.toast.show{opacity:1}
.hidden{display:none}
@media (max-width:720px){.hide-sm{display:none}.thead,.trow{grid-template-columns:2fr 1fr .7fr}}
`
