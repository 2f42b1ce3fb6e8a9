package pws

// Port protocols.
var Protocols = []string{"tcp", "udp"}

// Port states as reported by nmap.
var PortStates = []string{"open", "filtered", "closed", "unfiltered", "open|filtered", "closed|filtered"}

// Port review statuses.
var PortStatuses = []string{"Needs Review", "Vulnerable", "Checked", "Owned"}

// OSTypes is the operating-system family enumeration for hosts.
var OSTypes = []Choice{
	{Code: "linux", Label: "Linux"},
	{Code: "windows", Label: "Windows"},
	{Code: "mac", Label: "Mac OS"},
	{Code: "ios", Label: "iOS"},
	{Code: "android", Label: "Android"},
	{Code: "freebsd", Label: "FreeBSD"},
	{Code: "openbsd", Label: "OpenBSD"},
	{Code: "solaris", Label: "Solaris"},
	{Code: "unix", Label: "Unix"},
	{Code: "cisco", Label: "Cisco"},
	{Code: "other", Label: "Other"},
	{Code: "unknown", Label: "Unknown"},
}

// DeviceTypes is the device-type enumeration for hosts.
var DeviceTypes = []Choice{
	{Code: "server", Label: "Server"},
	{Code: "workstation", Label: "Workstation"},
	{Code: "laptop", Label: "Laptop"},
	{Code: "mobile", Label: "Mobile"},
	{Code: "router", Label: "Router"},
	{Code: "switch", Label: "Switch"},
	{Code: "firewall", Label: "Firewall"},
	{Code: "printer", Label: "Printer"},
	{Code: "camera", Label: "Camera"},
	{Code: "voip", Label: "VoIP"},
	{Code: "storage", Label: "Storage"},
	{Code: "iot", Label: "IoT"},
	{Code: "other", Label: "Other"},
	{Code: "unknown", Label: "Unknown"},
}

// ScratchpadTypes are the scratchpad content types.
var ScratchpadTypes = []string{"code", "rich"}

// NoteObjectTypes are the parent segments a note page can hang off.
var NoteObjectTypes = []string{"e", "hosts", "ports"}

// Languages are the scratchpad syntax-highlighting modes.
var Languages = []string{
	"abap", "abc", "actionscript", "ada", "apache_conf", "asciidoc", "asl",
	"assembly_x86", "autohotkey", "sh", "batchfile", "bro", "c_cpp", "csharp",
	"c9search", "cirru", "clojure", "cobol", "coffee", "coldfusion",
	"csound_orchestra", "csound_document", "csound_score", "css", "curly", "d",
	"dart", "diff", "django", "dockerfile", "dot", "drools", "edifact",
	"eiffel", "ejs", "elixir", "elm", "erlang", "forth", "fortran", "ftl",
	"fsharp", "gcode", "gherkin", "gitignore", "glsl", "golang", "gobstones",
	"graphqlschema", "groovy", "haml", "handlebars", "haskell",
	"haskell_cabal", "haxe", "hjson", "html", "html_elixir", "html_ruby",
	"ini", "io", "jack", "jade", "java", "javascript", "json", "jsoniq", "jsp",
	"jssm", "jsx", "julia", "kotlin", "latex", "less", "liquid", "lisp",
	"livescript", "logiql", "lsl", "lua", "luapage", "lucene", "makefile",
	"markdown", "mask", "matlab", "maze", "mel", "mixal", "mushcode", "mysql",
	"nix", "nsis", "objectivec", "ocaml", "pascal", "perl", "pgsql", "php",
	"php_laravel_blade", "pig", "plain_text", "powershell", "praat", "prolog",
	"properties", "protobuf", "puppet", "python", "r", "razor", "rdoc", "red",
	"rhtml", "rst", "ruby", "rust", "sass", "scad", "scala", "scheme", "scss",
	"sjs", "slim", "smarty", "snippets", "soy_template", "space", "sql",
	"sqlserver", "stylus", "svg", "swift", "tcl", "terraform", "tex", "text",
	"textile", "toml", "tsx", "twig", "typescript", "vala", "vbscript",
	"velocity", "verilog", "vhdl", "wollok", "xml", "xquery",
}

func choiceLabels(choices []Choice) []string {
	labels := make([]string, 0, len(choices))
	for _, choice := range choices {
		labels = append(labels, choice.Label)
	}

	return labels
}
