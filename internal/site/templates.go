package site

// pageTemplate is the Go html/template for each generated page. The brand
// link sits outside <nav> so it is never a highlight candidate.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}} - {{.ProjectName}}</title>
  <link rel="stylesheet" href="/style.css">
</head>
<body>
  <header><h1><a href="/" class="brand">{{.ProjectName}}</a></h1></header>
  <div class="layout">
    {{.TreeHTML}}
    <main class="content">
      <article class="page-content">
        {{.Content}}
      </article>
    </main>
  </div>
  <script src="/main.js" type="text/javascript"></script>
</body>
</html>`

// cssContent is the stylesheet shared by every generated page.
const cssContent = `* { box-sizing: border-box; }
body { margin: 0; font: 16px/1.6 -apple-system, "Segoe UI", Helvetica, Arial, sans-serif; color: #34495e; }
header { background: #34495e; padding: 12px 24px; }
header h1 { margin: 0; font-size: 22px; }
header a.brand { color: #fff; text-decoration: none; }
.layout { display: flex; min-height: calc(100vh - 56px); }
nav.sidebar { width: 260px; flex-shrink: 0; padding: 16px; border-right: 1px solid #e4e5e7; background: #f7f9fa; }
nav.sidebar ul { list-style: none; margin: 0; padding-left: 12px; }
nav.sidebar > ul { padding-left: 0; }
nav.sidebar li.dir > ul { display: none; }
nav.sidebar li.dir.expanded > ul { display: block; }
nav.sidebar .dir-toggle { font-weight: 600; cursor: default; }
nav a { display: block; padding: 2px 6px; color: #62cb31; text-decoration: none; border-radius: 3px; }
nav a:hover { color: #4a9b24; }
nav a.live { color: #34495e; font-weight: 600; background: #e8f5e0; }
main.content { flex: 1; padding: 24px 40px; max-width: 900px; }
pre { padding: 12px; overflow-x: auto; background: #f6f8fa; border-radius: 4px; }
code { font-family: Consolas, Monaco, monospace; font-size: 14px; }
`
