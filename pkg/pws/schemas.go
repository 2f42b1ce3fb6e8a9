package pws

import "fmt"

// EngagementSchema declares the Engagement fields.
var EngagementSchema = Schema{
	idRule("id", false),
	{
		Name:           "name",
		Required:       true,
		Type:           TypeString,
		Check:          MatchPattern(TitlePattern),
		Message:        `Engagement "name" is required.`,
		MissingMessage: `Engagement "name" is required.`,
	},
	stringRule("notes", `"notes" should be a string`),
	stringRule("client_id", `"client_id" should be a string`),
	timestampRule("created_at"),
	timestampRule("archived"),
}

// HostSchema declares the Host fields.
var HostSchema = Schema{
	idRule("board_id", false),
	idRule("eid", false),
	boolRule("flagged"),
	stringRule("hostnames", `"hostnames" should be a string`),
	idRule("id", false),
	stringRule("label", `"label" should be a string.`),
	stringRule("notes", `"notes" should be a string`),
	stringRule("os", `"os" should be a string`),
	{
		Name:     "os_type",
		Nullable: true,
		Type:     TypeString,
		Check:    OneOfChoices(OSTypes),
		Message:  fmt.Sprintf(`"os_type" should be one of the following: %s`, quoteList(choiceLabels(OSTypes))),
	},
	boolRule("out_of_scope"),
	boolRule("owned"),
	boolRule("reviewed"),
	boolRule("shell"),
	{
		Name:     "target",
		Required: true,
		Type:     TypeString,
		Check:    CanonicalIP,
		Message:  "Target should be a valid IPv4 Address",
	},
	boolRule("thumbs_down"),
	boolRule("thumbs_up"),
	{
		Name:     "type",
		Nullable: true,
		Type:     TypeString,
		Check:    OneOfChoices(DeviceTypes),
		Message:  fmt.Sprintf(`"type" should be one of the following: %s`, quoteList(choiceLabels(DeviceTypes))),
	},
	timestampRule("created_at"),
}

// PortSchema declares the Port fields.
var PortSchema = Schema{
	{
		Name:     "checklist",
		Nullable: true,
		Type:     TypeList,
		Check:    MapList,
		Message:  `"checklist" should be a list of dictionaries.`,
	},
	idRule("hid", false),
	idRule("id", false),
	{
		Name:     "port",
		Required: true,
		Type:     TypeInt,
		Check:    IntRange(0, 65535),
		Message:  `"port" should be an intiger between 0 and 65,535.`,
	},
	{
		Name:     "proto",
		Nullable: true,
		Type:     TypeString,
		Check:    OneOf(Protocols...),
		Message:  `"proto" should be "tcp", "udp", or None`,
	},
	stringRule("service", `"service" should be a string.`),
	{
		Name:     "status",
		Nullable: true,
		Type:     TypeString,
		Check:    OneOf(PortStatuses...),
		Message:  `Not a valid "status".`,
	},
	{
		Name:     "state",
		Nullable: true,
		Type:     TypeString,
		Check:    OneOf(PortStates...),
		Message:  `Not a valid "state".`,
	},
	stringRule("notes", `"notes" should be a string`),
	stringRule("version", `"version" should be a string`),
}

// FindingSchema declares the Finding fields.
var FindingSchema = Schema{
	idRule("id", false),
	idRule("eid", false),
	stringRule("finding_id", `"finding_id" should be a string`),
	titleRule(`Finding "title" is required.`),
	stringRule("environment", `"environment" should be a string`),
	stringRule("category", `"category" should be a string`),
	stringRule("risk_level", `"risk_level" should be a string`),
	{Name: "cvss2_num", Nullable: true, Type: TypeFloat, Message: `"cvss2_num" should be a number`},
	stringRule("cvss2_str", `"cvss2_str" should be a string`),
	{Name: "cvss3_num", Nullable: true, Type: TypeFloat, Message: `"cvss3_num" should be a number`},
	stringRule("cvss3_str", `"cvss3_str" should be a string`),
	{
		Name:     "dread",
		Nullable: true,
		Type:     TypeList,
		Check:    StringList,
		Message:  `"dread" should be a list of strings.`,
	},
	stringRule("background", `"background" should be a string`),
	stringRule("desc_brief", `"desc_brief" should be a string`),
	stringRule("desc_full", `"desc_full" should be a string`),
	stringRule("impact_brief", `"impact_brief" should be a string`),
	stringRule("impact_full", `"impact_full" should be a string`),
	stringRule("reco_brief", `"reco_brief" should be a string`),
	stringRule("reco_full", `"reco_full" should be a string`),
	stringRule("reco_effort", `"reco_effort" should be a string`),
	stringRule("targets", `"targets" should be a string`),
	stringRule("references", `"references" should be a string`),
	stringRule("evidence", `"evidence" should be a string`),
	stringRule("validation_steps", `"validation_steps" should be a string`),
	stringRule("remediation_log", `"remediation_log" should be a string`),
	timestampRule("created_at"),
}

// NotePageSchema declares the NotePage fields.
var NotePageSchema = Schema{
	stringRule("content", `"contented" should be a string or None.`),
	idRule("id", false),
	idRule("oid", false),
	{
		Name:    "otype",
		Type:    TypeString,
		Check:   OneOf(NoteObjectTypes...),
		Message: fmt.Sprintf(`"otype" should be one of the following: %s`, quoteList(NoteObjectTypes)),
	},
	titleRule(`Note Page "title" is required.`),
}

// ScratchpadSchema declares the Scratchpad fields.
var ScratchpadSchema = Schema{
	idRule("hid", false),
	idRule("id", false),
	titleRule(`Scratchpad "title" is required.`),
	{
		Name:     "type",
		Nullable: true,
		Type:     TypeString,
		Check:    OneOf(ScratchpadTypes...),
		Message:  fmt.Sprintf(`"type" should be None or one of the following: %s`, quoteList(ScratchpadTypes)),
	},
	{
		Name:     "language",
		Nullable: true,
		Type:     TypeString,
		Check:    OneOf(Languages...),
		Message:  fmt.Sprintf(`"language" should be None or one of the following: %s`, quoteList(Languages)),
	},
	stringRule("content", `"contented" should be a string or None.`),
}
