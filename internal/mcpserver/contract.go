package mcpserver

// JournalFormatContract describes the persisted journal file format that
// external tools must preserve when editing journal files directly.
const JournalFormatContract = `# Bloom Journal File Contract

Each user owns exactly one journal file in the journal directory.

## Naming

` + "```" + `
journals_<name>.json
` + "```" + `

where ` + "`" + `<name>` + "`" + ` is the display name with every character removed except
letters, digits, spaces, dots and underscores, and trailing spaces trimmed.

## Structure

A JSON array of entry objects in append order (not necessarily
chronological, since entries may be backdated):

` + "```" + `json
[
  {
    "date": "2025-03-14T21:05:00+07:00",
    "content": "Free text of the entry."
  }
]
` + "```" + `

## Rules

1. ` + "`" + `date` + "`" + ` is an ISO-8601 / RFC 3339 timestamp. Date-only values are
   accepted on read and mean midnight local time.
2. ` + "`" + `content` + "`" + ` is arbitrary UTF-8 text. Mood check-ins use the prefix
   ` + "`" + `Mood: <emoji> (<score>)` + "`" + ` on the first line; keep that prefix intact.
3. Append only. Never reorder or rewrite existing entries.
4. An entry with an unreadable ` + "`" + `date` + "`" + ` is loaded with the current time
   rather than dropped; a file that is not a valid JSON array is treated
   as an empty journal.
5. Encoding is UTF-8, two-space indented.
`
