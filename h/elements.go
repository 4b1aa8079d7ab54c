package h

import "github.com/ryanhamamura/uidom/dom"

// Kinds maps every HTML element name to its rendering traits.
var Kinds = map[string]dom.Kind{
	"a":          {Name: "a"},
	"abbr":       {Name: "abbr"},
	"address":    {Name: "address"},
	"area":       {Name: "area", Single: true, Void: true},
	"article":    {Name: "article"},
	"aside":      {Name: "aside"},
	"audio":      {Name: "audio"},
	"b":          {Name: "b"},
	"base":       {Name: "base", Single: true, Void: true},
	"bdi":        {Name: "bdi"},
	"bdo":        {Name: "bdo"},
	"blockquote": {Name: "blockquote"},
	"body":       {Name: "body"},
	"br":         {Name: "br", Single: true, Void: true},
	"button":     {Name: "button"},
	"canvas":     {Name: "canvas"},
	"caption":    {Name: "caption"},
	"cite":       {Name: "cite"},
	"code":       {Name: "code"},
	"col":        {Name: "col", Single: true, Void: true},
	"colgroup":   {Name: "colgroup"},
	"data":       {Name: "data"},
	"datalist":   {Name: "datalist"},
	"dd":         {Name: "dd"},
	"del":        {Name: "del"},
	"details":    {Name: "details"},
	"dfn":        {Name: "dfn"},
	"dialog":     {Name: "dialog"},
	"div":        {Name: "div"},
	"dl":         {Name: "dl"},
	"dt":         {Name: "dt"},
	"em":         {Name: "em"},
	"embed":      {Name: "embed", Single: true, Void: true},
	"fieldset":   {Name: "fieldset"},
	"figcaption": {Name: "figcaption"},
	"figure":     {Name: "figure"},
	"footer":     {Name: "footer"},
	"form":       {Name: "form"},
	"h1":         {Name: "h1"},
	"h2":         {Name: "h2"},
	"h3":         {Name: "h3"},
	"h4":         {Name: "h4"},
	"h5":         {Name: "h5"},
	"h6":         {Name: "h6"},
	"head":       {Name: "head"},
	"header":     {Name: "header"},
	"hgroup":     {Name: "hgroup"},
	"hr":         {Name: "hr", Single: true, Void: true},
	"html":       {Name: "html"},
	"i":          {Name: "i"},
	"iframe":     {Name: "iframe"},
	"img":        {Name: "img", Single: true, Void: true},
	"input":      {Name: "input", Single: true, Void: true},
	"ins":        {Name: "ins"},
	"kbd":        {Name: "kbd"},
	"label":      {Name: "label"},
	"legend":     {Name: "legend"},
	"li":         {Name: "li"},
	"link":       {Name: "link", Single: true, Void: true},
	"main":       {Name: "main"},
	"map":        {Name: "map"},
	"mark":       {Name: "mark"},
	"menu":       {Name: "menu"},
	"meta":       {Name: "meta", Single: true, Void: true},
	"meter":      {Name: "meter"},
	"nav":        {Name: "nav"},
	"noscript":   {Name: "noscript"},
	"object":     {Name: "object"},
	"ol":         {Name: "ol"},
	"optgroup":   {Name: "optgroup"},
	"option":     {Name: "option"},
	"output":     {Name: "output"},
	"p":          {Name: "p"},
	"param":      {Name: "param", Single: true, Void: true},
	"picture":    {Name: "picture"},
	"pre":        {Name: "pre", Inline: true},
	"progress":   {Name: "progress"},
	"q":          {Name: "q"},
	"rp":         {Name: "rp"},
	"rt":         {Name: "rt"},
	"ruby":       {Name: "ruby"},
	"s":          {Name: "s"},
	"samp":       {Name: "samp"},
	"script":     {Name: "script"},
	"search":     {Name: "search"},
	"section":    {Name: "section"},
	"select":     {Name: "select"},
	"slot":       {Name: "slot"},
	"small":      {Name: "small"},
	"source":     {Name: "source", Single: true, Void: true},
	"span":       {Name: "span"},
	"strong":     {Name: "strong"},
	"style":      {Name: "style"},
	"sub":        {Name: "sub"},
	"summary":    {Name: "summary"},
	"sup":        {Name: "sup"},
	"table":      {Name: "table"},
	"tbody":      {Name: "tbody"},
	"td":         {Name: "td"},
	"template":   {Name: "template"},
	"textarea":   {Name: "textarea", Inline: true},
	"tfoot":      {Name: "tfoot"},
	"th":         {Name: "th"},
	"thead":      {Name: "thead"},
	"time":       {Name: "time"},
	"title":      {Name: "title"},
	"tr":         {Name: "tr"},
	"track":      {Name: "track", Single: true, Void: true},
	"u":          {Name: "u"},
	"ul":         {Name: "ul"},
	"var":        {Name: "var"},
	"video":      {Name: "video"},
	"wbr":        {Name: "wbr", Single: true, Void: true},
}

func el(name string, args []any) *dom.Node {
	return dom.El(Kinds[name], args...)
}

func A(args ...any) *dom.Node          { return el("a", args) }
func Abbr(args ...any) *dom.Node       { return el("abbr", args) }
func Address(args ...any) *dom.Node    { return el("address", args) }
func Area(args ...any) *dom.Node       { return el("area", args) }
func Article(args ...any) *dom.Node    { return el("article", args) }
func Aside(args ...any) *dom.Node      { return el("aside", args) }
func Audio(args ...any) *dom.Node      { return el("audio", args) }
func B(args ...any) *dom.Node          { return el("b", args) }
func Base(args ...any) *dom.Node       { return el("base", args) }
func Bdi(args ...any) *dom.Node        { return el("bdi", args) }
func Bdo(args ...any) *dom.Node        { return el("bdo", args) }
func Blockquote(args ...any) *dom.Node { return el("blockquote", args) }
func Body(args ...any) *dom.Node       { return el("body", args) }
func Br(args ...any) *dom.Node         { return el("br", args) }
func Button(args ...any) *dom.Node     { return el("button", args) }
func Canvas(args ...any) *dom.Node     { return el("canvas", args) }
func Caption(args ...any) *dom.Node    { return el("caption", args) }
func Cite(args ...any) *dom.Node       { return el("cite", args) }
func Code(args ...any) *dom.Node       { return el("code", args) }
func Col(args ...any) *dom.Node        { return el("col", args) }
func Colgroup(args ...any) *dom.Node   { return el("colgroup", args) }
func DataEl(args ...any) *dom.Node     { return el("data", args) }
func Datalist(args ...any) *dom.Node   { return el("datalist", args) }
func Dd(args ...any) *dom.Node         { return el("dd", args) }
func Del(args ...any) *dom.Node        { return el("del", args) }
func Details(args ...any) *dom.Node    { return el("details", args) }
func Dfn(args ...any) *dom.Node        { return el("dfn", args) }
func Dialog(args ...any) *dom.Node     { return el("dialog", args) }
func Div(args ...any) *dom.Node        { return el("div", args) }
func Dl(args ...any) *dom.Node         { return el("dl", args) }
func Dt(args ...any) *dom.Node         { return el("dt", args) }
func Em(args ...any) *dom.Node         { return el("em", args) }
func Embed(args ...any) *dom.Node      { return el("embed", args) }
func Fieldset(args ...any) *dom.Node   { return el("fieldset", args) }
func Figcaption(args ...any) *dom.Node { return el("figcaption", args) }
func Figure(args ...any) *dom.Node     { return el("figure", args) }
func Footer(args ...any) *dom.Node     { return el("footer", args) }
func Form(args ...any) *dom.Node       { return el("form", args) }
func H1(args ...any) *dom.Node         { return el("h1", args) }
func H2(args ...any) *dom.Node         { return el("h2", args) }
func H3(args ...any) *dom.Node         { return el("h3", args) }
func H4(args ...any) *dom.Node         { return el("h4", args) }
func H5(args ...any) *dom.Node         { return el("h5", args) }
func H6(args ...any) *dom.Node         { return el("h6", args) }
func Head(args ...any) *dom.Node       { return el("head", args) }
func Header(args ...any) *dom.Node     { return el("header", args) }
func Hgroup(args ...any) *dom.Node     { return el("hgroup", args) }
func Hr(args ...any) *dom.Node         { return el("hr", args) }
func Html(args ...any) *dom.Node       { return el("html", args) }
func I(args ...any) *dom.Node          { return el("i", args) }
func Iframe(args ...any) *dom.Node     { return el("iframe", args) }
func Img(args ...any) *dom.Node        { return el("img", args) }
func Input(args ...any) *dom.Node      { return el("input", args) }
func Ins(args ...any) *dom.Node        { return el("ins", args) }
func Kbd(args ...any) *dom.Node        { return el("kbd", args) }
func Label(args ...any) *dom.Node      { return el("label", args) }
func Legend(args ...any) *dom.Node     { return el("legend", args) }
func Li(args ...any) *dom.Node         { return el("li", args) }
func Link(args ...any) *dom.Node       { return el("link", args) }
func Main(args ...any) *dom.Node       { return el("main", args) }
func Map(args ...any) *dom.Node        { return el("map", args) }
func Mark(args ...any) *dom.Node       { return el("mark", args) }
func Menu(args ...any) *dom.Node       { return el("menu", args) }
func Meta(args ...any) *dom.Node       { return el("meta", args) }
func Meter(args ...any) *dom.Node      { return el("meter", args) }
func Nav(args ...any) *dom.Node        { return el("nav", args) }
func Noscript(args ...any) *dom.Node   { return el("noscript", args) }
func Object(args ...any) *dom.Node     { return el("object", args) }
func Ol(args ...any) *dom.Node         { return el("ol", args) }
func Optgroup(args ...any) *dom.Node   { return el("optgroup", args) }
func Option(args ...any) *dom.Node     { return el("option", args) }
func Output(args ...any) *dom.Node     { return el("output", args) }
func P(args ...any) *dom.Node          { return el("p", args) }
func Param(args ...any) *dom.Node      { return el("param", args) }
func Picture(args ...any) *dom.Node    { return el("picture", args) }
func Pre(args ...any) *dom.Node        { return el("pre", args) }
func Progress(args ...any) *dom.Node   { return el("progress", args) }
func Q(args ...any) *dom.Node          { return el("q", args) }
func Rp(args ...any) *dom.Node         { return el("rp", args) }
func Rt(args ...any) *dom.Node         { return el("rt", args) }
func Ruby(args ...any) *dom.Node       { return el("ruby", args) }
func S(args ...any) *dom.Node          { return el("s", args) }
func Samp(args ...any) *dom.Node       { return el("samp", args) }
func Script(args ...any) *dom.Node     { return el("script", args) }
func Search(args ...any) *dom.Node     { return el("search", args) }
func Section(args ...any) *dom.Node    { return el("section", args) }
func Select(args ...any) *dom.Node     { return el("select", args) }
func Slot(args ...any) *dom.Node       { return el("slot", args) }
func Small(args ...any) *dom.Node      { return el("small", args) }
func Source(args ...any) *dom.Node     { return el("source", args) }
func Span(args ...any) *dom.Node       { return el("span", args) }
func Strong(args ...any) *dom.Node     { return el("strong", args) }
func Style(args ...any) *dom.Node      { return el("style", args) }
func Sub(args ...any) *dom.Node        { return el("sub", args) }
func Summary(args ...any) *dom.Node    { return el("summary", args) }
func Sup(args ...any) *dom.Node        { return el("sup", args) }
func Table(args ...any) *dom.Node      { return el("table", args) }
func Tbody(args ...any) *dom.Node      { return el("tbody", args) }
func Td(args ...any) *dom.Node         { return el("td", args) }
func Template(args ...any) *dom.Node   { return el("template", args) }
func Textarea(args ...any) *dom.Node   { return el("textarea", args) }
func Tfoot(args ...any) *dom.Node      { return el("tfoot", args) }
func Th(args ...any) *dom.Node         { return el("th", args) }
func Thead(args ...any) *dom.Node      { return el("thead", args) }
func Time(args ...any) *dom.Node       { return el("time", args) }
func Title(args ...any) *dom.Node      { return el("title", args) }
func Tr(args ...any) *dom.Node         { return el("tr", args) }
func Track(args ...any) *dom.Node      { return el("track", args) }
func U(args ...any) *dom.Node          { return el("u", args) }
func Ul(args ...any) *dom.Node         { return el("ul", args) }
func Var(args ...any) *dom.Node        { return el("var", args) }
func Video(args ...any) *dom.Node      { return el("video", args) }
func Wbr(args ...any) *dom.Node        { return el("wbr", args) }
