package email

import (
	"regexp"
	"strings"
)

// The generated topic text follows a fixed markdown-like template. Rendering
// is an ordered sequence of pattern substitutions over that template plus
// light generic markdown handling; anything unmatched degrades to plain
// paragraphs rather than failing.
type substitution struct {
	re   *regexp.Regexp
	repl string
}

var substitutions = []substitution{
	{regexp.MustCompile(`\*\*Topic Area:\*\*\s*\[([^\]]+)\]`), "<h2>🎯 Topic Area: $1</h2>"},
	{regexp.MustCompile(`\*\*Title:\*\*\s*\[([^\]]+)\]`), "<h2>📖 $1</h2>"},
	{regexp.MustCompile(`\*\*📄 Description:\*\*`), "<h3>📄 Description</h3>"},
	{regexp.MustCompile(`\*\*🧠 Key Concepts & Insights:\*\*`), "<h3>🧠 Key Concepts & Insights</h3>"},
	{regexp.MustCompile(`\*\*🚀 Actionable Steps / Code Example:\*\*`), "<h3>🚀 Actionable Steps / Code Example</h3>"},
	{regexp.MustCompile(`\*\*📚 Further Reading:\*\*`), "<h3>📚 Further Reading</h3>"},
	{regexp.MustCompile(`\*\*(.*?)\*\*`), "<strong>$1</strong>"},
	{regexp.MustCompile("`([^`]+)`"), "<code>$1</code>"},
	{regexp.MustCompile("```([\\s\\S]*?)```"), "<pre><code>$1</code></pre>"},
	{regexp.MustCompile(`(?m)^\* (.*)$`), "<li>$1</li>"},
	{regexp.MustCompile(`(?m)^\d+\. (.*)$`), "<li>$1</li>"},
	{regexp.MustCompile(`\n\n`), "</p><p>"},
	{regexp.MustCompile(`(?m)^(.*)$`), "<p>$1</p>"},
	// unwrap block elements that the paragraph pass swallowed
	{regexp.MustCompile(`<p><h[2-6]>`), "<h2>"},
	{regexp.MustCompile(`</h[2-6]></p>`), "</h2>"},
	{regexp.MustCompile(`<p><li>`), "<li>"},
	{regexp.MustCompile(`</li></p>`), "</li>"},
	{regexp.MustCompile(`<p><ul>`), "<ul>"},
	{regexp.MustCompile(`<p><ol>`), "<ol>"},
	{regexp.MustCompile(`</ul></p>`), "</ul>"},
	{regexp.MustCompile(`</ol></p>`), "</ol>"},
	{regexp.MustCompile(`<p><pre>`), "<pre>"},
	{regexp.MustCompile(`</pre></p>`), "</pre>"},
	{regexp.MustCompile(`<p><code>`), "<code>"},
	{regexp.MustCompile(`</code></p>`), "</code>"},
	{regexp.MustCompile(`<p>\s*</p>`), ""},
	{regexp.MustCompile(`<li></li>`), ""},
}

func markdownToHTML(markdown string) string {
	html := markdown
	for _, s := range substitutions {
		html = s.re.ReplaceAllString(html, s.repl)
	}
	return wrapListItems(html)
}

// wrapListItems encloses the span from the first <li> to the last </li> in a
// single list element; ordered when the items look numbered.
func wrapListItems(html string) string {
	start := strings.Index(html, "<li>")
	if start < 0 {
		return html
	}
	end := strings.LastIndex(html, "</li>") + len("</li>")
	items := html[start:end]
	tag := "ul"
	if strings.Contains(items, "1.") || strings.Contains(items, "2.") || strings.Contains(items, "3.") {
		tag = "ol"
	}
	return html[:start] + "<" + tag + ">" + items + "</" + tag + ">" + html[end:]
}

// RenderEmail converts the raw generated text into the branded HTML email
// document.
func RenderEmail(raw string) string {
	return strings.Replace(emailShell, "{{CONTENT}}", markdownToHTML(raw), 1)
}

const emailShell = `<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Daily Learning Topic</title>
    <style>
      * {
        margin: 0;
        padding: 0;
        box-sizing: border-box;
      }
      body {
        font-family: 'Inter', -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif;
        line-height: 1.7;
        color: #ffffff;
        background: #0a0a0a;
        padding: 20px;
        min-height: 100vh;
      }
      .container {
        max-width: 700px;
        margin: 0 auto;
        background: #111111;
        border-radius: 20px;
        box-shadow: 0 20px 40px rgba(0, 212, 255, 0.1);
        overflow: hidden;
        border: 1px solid #27272a;
      }
      .header {
        background: linear-gradient(135deg, #00d4ff 0%, #7c3aed 100%);
        color: white;
        padding: 40px 30px;
        text-align: center;
        position: relative;
        overflow: hidden;
      }
      .header h1 {
        font-size: 28px;
        font-weight: 900;
        margin-bottom: 8px;
        text-shadow: 0 2px 4px rgba(0,0,0,0.3);
      }
      .header p {
        font-size: 16px;
        opacity: 0.9;
      }
      .content {
        padding: 40px 30px;
        background: #111111;
        color: #ffffff;
        word-wrap: break-word;
        overflow-wrap: break-word;
      }
      .content h2 {
        font-size: 24px;
        color: #00d4ff;
        margin: 30px 0 15px 0;
        font-weight: 700;
        border-left: 4px solid #00d4ff;
        padding-left: 15px;
      }
      .content h3 {
        font-size: 20px;
        color: #a1a1aa;
        margin: 25px 0 12px 0;
        font-weight: 600;
      }
      .content h4 {
        font-size: 18px;
        color: #7c3aed;
        margin: 20px 0 10px 0;
        font-weight: 600;
      }
      .content p {
        margin-bottom: 16px;
        font-size: 16px;
        color: #a1a1aa;
        word-wrap: break-word;
        overflow-wrap: break-word;
      }
      .content strong {
        color: #ffffff;
        font-weight: 600;
      }
      .content code {
        background: #1a1a1a;
        padding: 4px 8px;
        border-radius: 6px;
        font-family: 'SF Mono', Monaco, 'Cascadia Code', 'Roboto Mono', Consolas, 'Courier New', monospace;
        font-size: 14px;
        color: #00d4ff;
        border: 1px solid #27272a;
      }
      .content pre {
        background: #0a0a0a;
        color: #ffffff;
        padding: 20px;
        border-radius: 12px;
        overflow-x: auto;
        margin: 20px 0;
        font-family: 'SF Mono', Monaco, 'Cascadia Code', 'Roboto Mono', Consolas, 'Courier New', monospace;
        font-size: 14px;
        line-height: 1.5;
        border: 1px solid #27272a;
      }
      .content pre code {
        background: transparent;
        border: none;
        padding: 0;
        color: inherit;
      }
      .content ul, .content ol {
        margin: 16px 0;
        padding-left: 25px;
      }
      .content li {
        margin-bottom: 8px;
        color: #a1a1aa;
      }
      .content a {
        color: #00d4ff;
        text-decoration: none;
      }
      .content a:hover {
        text-decoration: underline;
      }
      .footer {
        text-align: center;
        padding: 30px;
        background: #0a0a0a;
        border-top: 1px solid #27272a;
      }
      .footer p {
        color: #71717a;
        font-size: 14px;
        margin-bottom: 8px;
      }
      .footer .brand {
        font-weight: 600;
        color: #ffffff;
      }
      .emoji {
        font-size: 1.2em;
        margin-right: 8px;
      }
      @media (max-width: 600px) {
        body {
          padding: 10px;
          font-size: 14px;
        }
        .container {
          margin: 0;
          border-radius: 12px;
        }
        .header, .content, .footer {
          padding: 20px;
        }
        .header h1 {
          font-size: 24px;
        }
        .content h2 {
          font-size: 20px;
        }
        .content h3 {
          font-size: 18px;
        }
        .content pre {
          padding: 15px;
          font-size: 12px;
        }
      }
    </style>
  </head>
  <body>
    <div class="container">
      <div class="header">
        <h1><span class="emoji">📚</span>Daily Learning Topic</h1>
        <p>Your daily dose of technical knowledge</p>
      </div>
      <div class="content">
        {{CONTENT}}
      </div>
      <div class="footer">
        <p>Happy Learning! <span class="emoji">🚀</span></p>
        <p class="brand">Learning Notifier</p>
        <p><small>Empowering developers with daily insights</small></p>
        <p><small>Built with ❤️ by developers, for developers</small></p>
      </div>
    </div>
  </body>
</html>
`
