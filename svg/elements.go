package svg

import "github.com/ryanhamamura/uidom/dom"

var Kinds = map[string]dom.Kind{
	"svg":                 {Name: "svg"},
	"a":                   {Name: "a"},
	"animate":             {Name: "animate"},
	"animateMotion":       {Name: "animateMotion"},
	"animateTransform":    {Name: "animateTransform"},
	"circle":              {Name: "circle"},
	"clipPath":            {Name: "clipPath"},
	"defs":                {Name: "defs"},
	"desc":                {Name: "desc"},
	"ellipse":             {Name: "ellipse"},
	"feBlend":             {Name: "feBlend"},
	"feColorMatrix":       {Name: "feColorMatrix"},
	"feComponentTransfer": {Name: "feComponentTransfer"},
	"feComposite":         {Name: "feComposite"},
	"feConvolveMatrix":    {Name: "feConvolveMatrix"},
	"feDiffuseLighting":   {Name: "feDiffuseLighting"},
	"feDisplacementMap":   {Name: "feDisplacementMap"},
	"feDistantLight":      {Name: "feDistantLight"},
	"feDropShadow":        {Name: "feDropShadow"},
	"feFlood":             {Name: "feFlood"},
	"feFuncA":             {Name: "feFuncA"},
	"feFuncB":             {Name: "feFuncB"},
	"feFuncG":             {Name: "feFuncG"},
	"feFuncR":             {Name: "feFuncR"},
	"feGaussianBlur":      {Name: "feGaussianBlur"},
	"feImage":             {Name: "feImage"},
	"feMerge":             {Name: "feMerge"},
	"feMergeNode":         {Name: "feMergeNode"},
	"feMorphology":        {Name: "feMorphology"},
	"feOffset":            {Name: "feOffset"},
	"fePointLight":        {Name: "fePointLight"},
	"feSpecularLighting":  {Name: "feSpecularLighting"},
	"feSpotLight":         {Name: "feSpotLight"},
	"feTile":              {Name: "feTile"},
	"feTurbulence":        {Name: "feTurbulence"},
	"filter":              {Name: "filter"},
	"foreignObject":       {Name: "foreignObject"},
	"g":                   {Name: "g"},
	"image":               {Name: "image"},
	"line":                {Name: "line"},
	"linearGradient":      {Name: "linearGradient"},
	"marker":              {Name: "marker"},
	"mask":                {Name: "mask"},
	"metadata":            {Name: "metadata"},
	"mpath":               {Name: "mpath"},
	"path":                {Name: "path"},
	"pattern":             {Name: "pattern"},
	"polygon":             {Name: "polygon"},
	"polyline":            {Name: "polyline"},
	"radialGradient":      {Name: "radialGradient"},
	"rect":                {Name: "rect"},
	"set":                 {Name: "set"},
	"stop":                {Name: "stop"},
	"switch":              {Name: "switch"},
	"symbol":              {Name: "symbol"},
	"text":                {Name: "text"},
	"textPath":            {Name: "textPath"},
	"title":               {Name: "title"},
	"tspan":               {Name: "tspan"},
	"use":                 {Name: "use"},
	"view":                {Name: "view"},
}

func SVG(args ...any) *dom.Node                 { return el("svg", args) }
func A(args ...any) *dom.Node                   { return el("a", args) }
func Animate(args ...any) *dom.Node             { return el("animate", args) }
func AnimateMotion(args ...any) *dom.Node       { return el("animateMotion", args) }
func AnimateTransform(args ...any) *dom.Node    { return el("animateTransform", args) }
func Circle(args ...any) *dom.Node              { return el("circle", args) }
func ClipPath(args ...any) *dom.Node            { return el("clipPath", args) }
func Defs(args ...any) *dom.Node                { return el("defs", args) }
func Desc(args ...any) *dom.Node                { return el("desc", args) }
func Ellipse(args ...any) *dom.Node             { return el("ellipse", args) }
func FeBlend(args ...any) *dom.Node             { return el("feBlend", args) }
func FeColorMatrix(args ...any) *dom.Node       { return el("feColorMatrix", args) }
func FeComponentTransfer(args ...any) *dom.Node { return el("feComponentTransfer", args) }
func FeComposite(args ...any) *dom.Node         { return el("feComposite", args) }
func FeConvolveMatrix(args ...any) *dom.Node    { return el("feConvolveMatrix", args) }
func FeDiffuseLighting(args ...any) *dom.Node   { return el("feDiffuseLighting", args) }
func FeDisplacementMap(args ...any) *dom.Node   { return el("feDisplacementMap", args) }
func FeDistantLight(args ...any) *dom.Node      { return el("feDistantLight", args) }
func FeDropShadow(args ...any) *dom.Node        { return el("feDropShadow", args) }
func FeFlood(args ...any) *dom.Node             { return el("feFlood", args) }
func FeFuncA(args ...any) *dom.Node             { return el("feFuncA", args) }
func FeFuncB(args ...any) *dom.Node             { return el("feFuncB", args) }
func FeFuncG(args ...any) *dom.Node             { return el("feFuncG", args) }
func FeFuncR(args ...any) *dom.Node             { return el("feFuncR", args) }
func FeGaussianBlur(args ...any) *dom.Node      { return el("feGaussianBlur", args) }
func FeImage(args ...any) *dom.Node             { return el("feImage", args) }
func FeMerge(args ...any) *dom.Node             { return el("feMerge", args) }
func FeMergeNode(args ...any) *dom.Node         { return el("feMergeNode", args) }
func FeMorphology(args ...any) *dom.Node        { return el("feMorphology", args) }
func FeOffset(args ...any) *dom.Node            { return el("feOffset", args) }
func FePointLight(args ...any) *dom.Node        { return el("fePointLight", args) }
func FeSpecularLighting(args ...any) *dom.Node  { return el("feSpecularLighting", args) }
func FeSpotLight(args ...any) *dom.Node         { return el("feSpotLight", args) }
func FeTile(args ...any) *dom.Node              { return el("feTile", args) }
func FeTurbulence(args ...any) *dom.Node        { return el("feTurbulence", args) }
func Filter(args ...any) *dom.Node              { return el("filter", args) }
func ForeignObject(args ...any) *dom.Node       { return el("foreignObject", args) }
func G(args ...any) *dom.Node                   { return el("g", args) }
func Image(args ...any) *dom.Node               { return el("image", args) }
func Line(args ...any) *dom.Node                { return el("line", args) }
func LinearGradient(args ...any) *dom.Node      { return el("linearGradient", args) }
func Marker(args ...any) *dom.Node              { return el("marker", args) }
func Mask(args ...any) *dom.Node                { return el("mask", args) }
func Metadata(args ...any) *dom.Node            { return el("metadata", args) }
func Mpath(args ...any) *dom.Node               { return el("mpath", args) }
func Path(args ...any) *dom.Node                { return el("path", args) }
func Pattern(args ...any) *dom.Node             { return el("pattern", args) }
func Polygon(args ...any) *dom.Node             { return el("polygon", args) }
func Polyline(args ...any) *dom.Node            { return el("polyline", args) }
func RadialGradient(args ...any) *dom.Node      { return el("radialGradient", args) }
func Rect(args ...any) *dom.Node                { return el("rect", args) }
func Set(args ...any) *dom.Node                 { return el("set", args) }
func Stop(args ...any) *dom.Node                { return el("stop", args) }
func Switch(args ...any) *dom.Node              { return el("switch", args) }
func Symbol(args ...any) *dom.Node              { return el("symbol", args) }
func Text(args ...any) *dom.Node                { return el("text", args) }
func TextPath(args ...any) *dom.Node            { return el("textPath", args) }
func Title(args ...any) *dom.Node               { return el("title", args) }
func Tspan(args ...any) *dom.Node               { return el("tspan", args) }
func Use(args ...any) *dom.Node                 { return el("use", args) }
func View(args ...any) *dom.Node                { return el("view", args) }
