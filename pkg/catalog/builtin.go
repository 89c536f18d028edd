package catalog

// builtinEntries is the full template set, grouped by category. Labels
// and shortcuts follow the block registry of the admin editor; every
// template is a complete fragment that parses to exactly one block.
var builtinEntries = []Entry{
	// Text
	{ID: "paragraph", Label: "Paragraph", Category: CategoryText, Template: "<p>Start writing…</p>", Shortcuts: []string{"p", "text"}},
	{ID: "heading-1", Label: "Heading 1", Category: CategoryText, Template: "<h1>Heading</h1>", Shortcuts: []string{"h1", "title"}},
	{ID: "heading-2", Label: "Heading 2", Category: CategoryText, Template: "<h2>Heading</h2>", Shortcuts: []string{"h2", "subtitle"}},
	{ID: "heading-3", Label: "Heading 3", Category: CategoryText, Template: "<h3>Heading</h3>", Shortcuts: []string{"h3"}},
	{ID: "heading-4", Label: "Heading 4", Category: CategoryText, Template: "<h4>Heading</h4>", Shortcuts: []string{"h4"}},
	{ID: "heading-5", Label: "Heading 5", Category: CategoryText, Template: "<h5>Heading</h5>", Shortcuts: []string{"h5"}},
	{ID: "heading-6", Label: "Heading 6", Category: CategoryText, Template: "<h6>Heading</h6>", Shortcuts: []string{"h6"}},
	{ID: "list-unordered", Label: "Bulleted List", Category: CategoryText, Template: "<ul><li>First item</li><li>Second item</li></ul>", Shortcuts: []string{"ul", "bullets"}},
	{ID: "list-ordered", Label: "Numbered List", Category: CategoryText, Template: "<ol><li>First item</li><li>Second item</li></ol>", Shortcuts: []string{"ol", "numbered"}},
	{ID: "quote", Label: "Quote", Category: CategoryText, Template: "<blockquote><p>Quote</p><cite>Citation</cite></blockquote>", Shortcuts: []string{"bq", "blockquote"}},
	{ID: "pull-quote", Label: "Pull Quote", Category: CategoryText, Template: `<blockquote class="pull-quote"><p>Pull quote</p></blockquote>`, Shortcuts: []string{"pq"}},
	{ID: "code", Label: "Code", Category: CategoryText, Template: "<pre><code>// code</code></pre>", Shortcuts: []string{"pre", "snippet"}},
	{ID: "verse", Label: "Verse", Category: CategoryText, Template: `<pre class="verse">Verse</pre>`, Shortcuts: []string{"poem"}},

	// Media
	{ID: "image", Label: "Image", Category: CategoryMedia, Template: `<img src="/media/placeholder.png" alt="">`, Shortcuts: []string{"img", "photo"}},
	{ID: "gallery", Label: "Gallery", Category: CategoryMedia, Template: `<figure class="gallery"><img src="/media/1.png" alt=""><img src="/media/2.png" alt=""></figure>`, Shortcuts: []string{"gal"}},
	{ID: "video", Label: "Video", Category: CategoryMedia, Template: `<video src="/media/clip.mp4" controls></video>`, Shortcuts: []string{"vid", "movie"}},
	{ID: "audio", Label: "Audio", Category: CategoryMedia, Template: `<audio src="/media/track.mp3" controls></audio>`, Shortcuts: []string{"sound", "music"}},
	{ID: "file", Label: "File", Category: CategoryMedia, Template: `<a class="file" href="/media/file.pdf" download>Download</a>`, Shortcuts: []string{"download"}},
	{ID: "cover", Label: "Cover", Category: CategoryMedia, Template: `<figure class="cover" style="background-image:url(/media/cover.png)"><h2>Cover</h2></figure>`, Shortcuts: []string{"hero"}},
	{ID: "media-text", Label: "Media & Text", Category: CategoryMedia, Template: `<figure class="media-text"><img src="/media/placeholder.png" alt=""><p>Text beside media.</p></figure>`, Shortcuts: []string{"mt"}},
	{ID: "figure", Label: "Figure with Caption", Category: CategoryMedia, Template: `<figure><img src="/media/placeholder.png" alt=""><figcaption>Caption</figcaption></figure>`, Shortcuts: []string{"fig", "caption"}},

	// Layout
	{ID: "group", Label: "Group", Category: CategoryLayout, Template: `<section class="group"><p>Grouped content</p></section>`, Shortcuts: []string{"grp"}},
	{ID: "columns-2", Label: "Two Columns", Category: CategoryLayout, Template: `<section class="columns cols-2"><p>Left</p><p>Right</p></section>`, Shortcuts: []string{"cols", "2col"}},
	{ID: "columns-3", Label: "Three Columns", Category: CategoryLayout, Template: `<section class="columns cols-3"><p>One</p><p>Two</p><p>Three</p></section>`, Shortcuts: []string{"3col"}},
	{ID: "grid", Label: "Grid", Category: CategoryLayout, Template: `<section class="grid"><p>Cell</p><p>Cell</p><p>Cell</p><p>Cell</p></section>`, Shortcuts: []string{}},
	{ID: "spacer", Label: "Spacer", Category: CategoryLayout, Template: `<hr class="spacer" style="visibility:hidden">`, Shortcuts: []string{"space", "gap"}},
	{ID: "separator", Label: "Separator", Category: CategoryLayout, Template: "<hr>", Shortcuts: []string{"hr", "divider"}},
	{ID: "page-break", Label: "Page Break", Category: CategoryLayout, Template: `<hr class="page-break">`, Shortcuts: []string{"break"}},

	// Design
	{ID: "button", Label: "Button", Category: CategoryDesign, Template: `<a class="button" href="#">Click me</a>`, Shortcuts: []string{"btn", "cta"}},
	{ID: "buttons", Label: "Button Row", Category: CategoryDesign, Template: `<nav class="buttons"><a class="button" href="#">One</a><a class="button" href="#">Two</a></nav>`, Shortcuts: []string{"btns"}},
	{ID: "icon", Label: "Icon", Category: CategoryDesign, Template: `<span class="icon" aria-hidden="true">★</span>`, Shortcuts: []string{}},
	{ID: "social-links", Label: "Social Links", Category: CategoryDesign, Template: `<nav class="social-links"><a href="#">Twitter</a><a href="#">GitHub</a></nav>`, Shortcuts: []string{"social"}},
	{ID: "site-title", Label: "Site Title", Category: CategoryDesign, Template: `<h1 class="site-title">Site Title</h1>`, Shortcuts: []string{}},
	{ID: "site-logo", Label: "Site Logo", Category: CategoryDesign, Template: `<img class="site-logo" src="/media/logo.png" alt="Logo">`, Shortcuts: []string{"logo"}},
	{ID: "site-tagline", Label: "Site Tagline", Category: CategoryDesign, Template: `<p class="site-tagline">Just another site</p>`, Shortcuts: []string{"tagline"}},

	// Interactive
	{ID: "accordion", Label: "Accordion", Category: CategoryInteractive, Template: `<details class="accordion"><summary>Section</summary><p>Body</p></details>`, Shortcuts: []string{"acc"}},
	{ID: "tabs", Label: "Tabs", Category: CategoryInteractive, Template: `<nav class="tabs"><a href="#tab-1">Tab 1</a><a href="#tab-2">Tab 2</a></nav>`, Shortcuts: []string{"tab"}},
	{ID: "toggle", Label: "Toggle", Category: CategoryInteractive, Template: `<details class="toggle"><summary>Show more</summary><p>Hidden content</p></details>`, Shortcuts: []string{}},
	{ID: "tooltip", Label: "Tooltip", Category: CategoryInteractive, Template: `<abbr class="tooltip" title="Tooltip text">Hover me</abbr>`, Shortcuts: []string{"tip"}},
	{ID: "countdown", Label: "Countdown Timer", Category: CategoryInteractive, Template: `<time class="countdown" datetime="2030-01-01">Counting down…</time>`, Shortcuts: []string{"timer"}},
	{ID: "progress-bar", Label: "Progress Bar", Category: CategoryInteractive, Template: `<progress max="100" value="60">60%</progress>`, Shortcuts: []string{"progress"}},
	{ID: "rating", Label: "Rating", Category: CategoryInteractive, Template: `<span class="rating" data-score="4">★★★★☆</span>`, Shortcuts: []string{"stars"}},
	{ID: "modal-trigger", Label: "Modal Trigger", Category: CategoryInteractive, Template: `<a class="modal-trigger" href="#modal">Open dialog</a>`, Shortcuts: []string{"modal"}},

	// Widgets
	{ID: "shortcode", Label: "Shortcode", Category: CategoryWidgets, Template: "<p>[shortcode]</p>", Shortcuts: []string{"sc"}},
	{ID: "custom-html", Label: "Custom HTML", Category: CategoryWidgets, Template: `<aside class="custom-html"><!-- custom markup --></aside>`, Shortcuts: []string{"html"}},
	{ID: "latest-posts", Label: "Latest Posts", Category: CategoryWidgets, Template: `<aside class="latest-posts" data-count="5">Latest posts</aside>`, Shortcuts: []string{"recent"}},
	{ID: "archives", Label: "Archives", Category: CategoryWidgets, Template: `<aside class="archives">Archives</aside>`, Shortcuts: []string{}},
	{ID: "category-list", Label: "Category List", Category: CategoryWidgets, Template: `<aside class="category-list">Categories</aside>`, Shortcuts: []string{"cats"}},
	{ID: "tag-cloud", Label: "Tag Cloud", Category: CategoryWidgets, Template: `<aside class="tag-cloud">Tags</aside>`, Shortcuts: []string{"tags"}},
	{ID: "search-box", Label: "Search Box", Category: CategoryWidgets, Template: `<form class="search-box" role="search"><input type="search" name="q"></form>`, Shortcuts: []string{"find"}},

	// Embeds
	{ID: "embed-link", Label: "Embed Link", Category: CategoryEmbeds, Template: `<a class="embed" href="https://example.com">https://example.com</a>`, Shortcuts: []string{"link", "url"}},
	{ID: "embed-youtube", Label: "YouTube", Category: CategoryEmbeds, Template: `<iframe src="https://www.youtube.com/embed/" allowfullscreen></iframe>`, Shortcuts: []string{"yt"}},
	{ID: "embed-vimeo", Label: "Vimeo", Category: CategoryEmbeds, Template: `<iframe src="https://player.vimeo.com/video/" allowfullscreen></iframe>`, Shortcuts: []string{}},
	{ID: "embed-twitter", Label: "Twitter Post", Category: CategoryEmbeds, Template: `<a class="embed embed-twitter" href="https://twitter.com/">Tweet</a>`, Shortcuts: []string{"tweet"}},
	{ID: "embed-spotify", Label: "Spotify", Category: CategoryEmbeds, Template: `<iframe src="https://open.spotify.com/embed/"></iframe>`, Shortcuts: []string{}},
	{ID: "embed-gist", Label: "GitHub Gist", Category: CategoryEmbeds, Template: `<a class="embed embed-gist" href="https://gist.github.com/">Gist</a>`, Shortcuts: []string{"gist"}},
	{ID: "embed-map", Label: "Map", Category: CategoryEmbeds, Template: `<iframe src="https://www.openstreetmap.org/export/embed.html"></iframe>`, Shortcuts: []string{"osm"}},

	// Form
	{ID: "form", Label: "Form", Category: CategoryForm, Template: `<form action="#" method="post"><input type="text" name="field"></form>`, Shortcuts: []string{}},
	{ID: "form-input", Label: "Text Input", Category: CategoryForm, Template: `<input type="text" name="field" placeholder="Text">`, Shortcuts: []string{"input"}},
	{ID: "form-textarea", Label: "Text Area", Category: CategoryForm, Template: `<textarea name="message" rows="4"></textarea>`, Shortcuts: []string{"textarea"}},
	{ID: "form-select", Label: "Select", Category: CategoryForm, Template: `<select name="choice"><option>One</option><option>Two</option></select>`, Shortcuts: []string{"dropdown"}},
	{ID: "form-checkbox", Label: "Checkbox", Category: CategoryForm, Template: `<label><input type="checkbox" name="agree"> Agree</label>`, Shortcuts: []string{"check"}},
	{ID: "form-radio", Label: "Radio Group", Category: CategoryForm, Template: `<fieldset><label><input type="radio" name="pick" value="a"> A</label><label><input type="radio" name="pick" value="b"> B</label></fieldset>`, Shortcuts: []string{"radio"}},
	{ID: "form-submit", Label: "Submit Button", Category: CategoryForm, Template: `<button type="submit">Send</button>`, Shortcuts: []string{"submit"}},

	// Advanced
	{ID: "table", Label: "Table", Category: CategoryAdvanced, Template: "<table><thead><tr><th>Header</th></tr></thead><tbody><tr><td>Cell</td></tr></tbody></table>", Shortcuts: []string{"tbl"}},
	{ID: "table-of-contents", Label: "Table of Contents", Category: CategoryAdvanced, Template: `<nav class="toc"><ol><li><a href="#section">Section</a></li></ol></nav>`, Shortcuts: []string{"toc"}},
	{ID: "read-more", Label: "Read More", Category: CategoryAdvanced, Template: `<a class="read-more" href="#">Read more</a>`, Shortcuts: []string{"more"}},
	{ID: "pagination", Label: "Pagination", Category: CategoryAdvanced, Template: `<nav class="pagination"><a href="#">‹ Prev</a><a href="#">Next ›</a></nav>`, Shortcuts: []string{"pages"}},
	{ID: "comments", Label: "Comments", Category: CategoryAdvanced, Template: `<aside class="comments">Comments</aside>`, Shortcuts: []string{}},
	{ID: "query-loop", Label: "Query Loop", Category: CategoryAdvanced, Template: `<aside class="query-loop" data-query="latest">Posts</aside>`, Shortcuts: []string{"loop"}},

	// Theme
	{ID: "post-title", Label: "Post Title", Category: CategoryTheme, Template: `<h1 class="post-title">Post Title</h1>`, Shortcuts: []string{}},
	{ID: "post-excerpt", Label: "Post Excerpt", Category: CategoryTheme, Template: `<p class="post-excerpt">Excerpt…</p>`, Shortcuts: []string{"excerpt"}},
	{ID: "post-featured-image", Label: "Featured Image", Category: CategoryTheme, Template: `<img class="post-featured-image" src="/media/featured.png" alt="">`, Shortcuts: []string{"featured"}},
	{ID: "post-meta", Label: "Post Meta", Category: CategoryTheme, Template: `<p class="post-meta">By Author · Date</p>`, Shortcuts: []string{"meta", "byline"}},
}
