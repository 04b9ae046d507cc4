package gitkit

import (
	"context"
	"strconv"
	"strings"
)

// UntrackedMode selects how git status reports untracked files.
type UntrackedMode int

const (
	// UntrackedNormal shows untracked files and directories, git's
	// default.
	UntrackedNormal UntrackedMode = iota
	// UntrackedNone shows no untracked files.
	UntrackedNone
	// UntrackedAll shows individual files inside untracked directories.
	UntrackedAll
)

func (m UntrackedMode) String() string {
	switch m {
	case UntrackedNone:
		return "no"
	case UntrackedAll:
		return "all"
	}
	return "normal"
}

// StatusOptions contains options for git status. Output is always
// requested in porcelain v2 format with branch headers, the only format
// this package parses.
type StatusOptions struct {
	// Ignored includes ignored files in the output.
	Ignored bool

	// Untracked controls how untracked files are reported.
	Untracked UntrackedMode
}

// Args renders the git status argument vector.
func (o StatusOptions) Args() ([]string, error) {
	args := []string{"status", "--porcelain=v2", "--branch"}
	switch o.Untracked {
	case UntrackedNormal:
	case UntrackedNone, UntrackedAll:
		args = append(args, "--untracked-files="+o.Untracked.String())
	default:
		return nil, &OptionsError{Command: "status", Field: "untracked", Reason: "unknown mode"}
	}
	if o.Ignored {
		args = append(args, "--ignored")
	}
	return args, nil
}

// Run executes git status in the given repository and parses the output.
func (o StatusOptions) Run(ctx context.Context, repo *Repository) (*Status, error) {
	out, err := repo.RunCommand(ctx, o)
	if err != nil {
		return nil, err
	}
	return ParseStatus(out)
}

// Status is the parsed result of git status --porcelain=v2 --branch.
type Status struct {
	// BranchOID is the object id of the current commit, or "(initial)"
	// before the first commit.
	BranchOID string

	// BranchHead is the current branch name, or "(detached)".
	BranchHead string

	// Upstream is the upstream branch name, empty when none is set.
	Upstream string

	// Ahead and Behind count commits relative to the upstream. Only
	// meaningful when Upstream is set.
	Ahead  int
	Behind int

	// Changed holds ordinary changed entries.
	Changed []Entry

	// Renamed holds renamed and copied entries.
	Renamed []Entry

	// Unmerged holds conflicted entries.
	Unmerged []Entry

	// Untracked and Ignored hold bare pathnames.
	Untracked []string
	Ignored   []string
}

// HasUpstream reports whether an upstream branch is configured.
func (s *Status) HasUpstream() bool {
	return s.Upstream != ""
}

// IsClean reports whether the working tree has no changed, renamed,
// unmerged or untracked entries. Ignored files do not count.
func (s *Status) IsClean() bool {
	return len(s.Changed) == 0 && len(s.Renamed) == 0 &&
		len(s.Unmerged) == 0 && len(s.Untracked) == 0
}

// Submodule describes the submodule state field of an entry.
type Submodule struct {
	IsSubmodule      bool
	CommitChanged    bool
	TrackedChanges   bool
	UntrackedChanges bool
}

// Stage is one side of an unmerged entry.
type Stage struct {
	Mode string
	OID  string
}

// Entry is a single non-header line of porcelain v2 status output.
type Entry struct {
	// Format is the leading line identifier: '1' changed, '2' renamed or
	// copied, 'u' unmerged, '?' untracked, '!' ignored.
	Format byte

	// Index and Worktree are the two status letters ('.', 'M', 'A', 'D',
	// 'R', 'C', 'U').
	Index    byte
	Worktree byte

	Sub Submodule

	// File modes, six octal characters each.
	ModeHead     string
	ModeIndex    string
	ModeWorktree string

	// Object names in HEAD and in the index.
	HeadOID  string
	IndexOID string

	// Path is the pathname; for renamed/copied entries the target path.
	Path string

	// ScoreKind is 'R' for renames, 'C' for copies; Score is the
	// similarity percentage. Renamed/copied entries only.
	ScoreKind byte
	Score     int

	// OrigPath is the source path. Renamed/copied entries only.
	OrigPath string

	// Stage1-3 carry mode and object name per conflict stage. Unmerged
	// entries only.
	Stage1 Stage
	Stage2 Stage
	Stage3 Stage
}

// IsChanged reports whether this is an ordinary changed entry.
func (e *Entry) IsChanged() bool { return e.Format == '1' }

// IsRenamed reports whether this is a renamed entry.
func (e *Entry) IsRenamed() bool { return e.Format == '2' && e.ScoreKind == 'R' }

// IsCopied reports whether this is a copied entry.
func (e *Entry) IsCopied() bool { return e.Format == '2' && e.ScoreKind == 'C' }

// IsUnmerged reports whether this is an unmerged entry.
func (e *Entry) IsUnmerged() bool { return e.Format == 'u' }

// IsUntracked reports whether this is an untracked entry.
func (e *Entry) IsUntracked() bool { return e.Format == '?' }

// IsIgnored reports whether this is an ignored entry.
func (e *Entry) IsIgnored() bool { return e.Format == '!' }

// ParseStatus parses the complete output of
// git status --porcelain=v2 --branch.
func ParseStatus(out string) (*Status, error) {
	status := &Status{}
	for _, line := range strings.Split(out, "\n") {
		if line == "" {
			continue
		}
		switch line[0] {
		case '#':
			if err := parseBranchHeader(status, line); err != nil {
				return nil, err
			}
		case '1':
			entry, err := ParseEntry(line)
			if err != nil {
				return nil, err
			}
			status.Changed = append(status.Changed, entry)
		case '2':
			entry, err := ParseEntry(line)
			if err != nil {
				return nil, err
			}
			status.Renamed = append(status.Renamed, entry)
		case 'u':
			entry, err := ParseEntry(line)
			if err != nil {
				return nil, err
			}
			status.Unmerged = append(status.Unmerged, entry)
		case '?':
			entry, err := ParseEntry(line)
			if err != nil {
				return nil, err
			}
			status.Untracked = append(status.Untracked, entry.Path)
		case '!':
			entry, err := ParseEntry(line)
			if err != nil {
				return nil, err
			}
			status.Ignored = append(status.Ignored, entry.Path)
		default:
			return nil, &StatusParseError{Line: line, Reason: "unknown line prefix"}
		}
	}
	return status, nil
}

// parseBranchHeader handles the "# branch.*" header lines.
func parseBranchHeader(status *Status, line string) error {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return &StatusParseError{Line: line, Reason: "short branch header"}
	}
	switch fields[1] {
	case "branch.oid":
		status.BranchOID = fields[2]
	case "branch.head":
		status.BranchHead = fields[2]
	case "branch.upstream":
		status.Upstream = fields[2]
	case "branch.ab":
		if len(fields) != 4 {
			return &StatusParseError{Line: line, Reason: "branch.ab needs +ahead -behind"}
		}
		ahead, ok := strings.CutPrefix(fields[2], "+")
		if !ok {
			return &StatusParseError{Line: line, Reason: "branch.ab ahead count missing + prefix"}
		}
		behind, ok := strings.CutPrefix(fields[3], "-")
		if !ok {
			return &StatusParseError{Line: line, Reason: "branch.ab behind count missing - prefix"}
		}
		var err error
		if status.Ahead, err = strconv.Atoi(ahead); err != nil {
			return &StatusParseError{Line: line, Reason: "bad ahead count"}
		}
		if status.Behind, err = strconv.Atoi(behind); err != nil {
			return &StatusParseError{Line: line, Reason: "bad behind count"}
		}
	default:
		return &StatusParseError{Line: line, Reason: "unknown branch header " + fields[1]}
	}
	return nil
}

// ParseEntry parses a single non-header porcelain v2 status line.
func ParseEntry(line string) (Entry, error) {
	if line == "" {
		return Entry{}, &StatusParseError{Line: line, Reason: "empty line"}
	}
	entry := Entry{Format: line[0]}

	switch entry.Format {
	case '1':
		// 1 <XY> <sub> <mH> <mI> <mW> <hH> <hI> <path>
		fields := strings.SplitN(line, " ", 9)
		if len(fields) != 9 {
			return Entry{}, &StatusParseError{Line: line, Reason: "changed entry needs 9 fields"}
		}
		if err := entry.parseCommon(line, fields[1], fields[2]); err != nil {
			return Entry{}, err
		}
		var err error
		if entry.ModeHead, err = parseMode(line, fields[3]); err != nil {
			return Entry{}, err
		}
		if entry.ModeIndex, err = parseMode(line, fields[4]); err != nil {
			return Entry{}, err
		}
		if entry.ModeWorktree, err = parseMode(line, fields[5]); err != nil {
			return Entry{}, err
		}
		entry.HeadOID = fields[6]
		entry.IndexOID = fields[7]
		entry.Path = fields[8]

	case '2':
		// 2 <XY> <sub> <mH> <mI> <mW> <hH> <hI> <X><score> <path>\t<origPath>
		fields := strings.SplitN(line, " ", 10)
		if len(fields) != 10 {
			return Entry{}, &StatusParseError{Line: line, Reason: "renamed entry needs 10 fields"}
		}
		if err := entry.parseCommon(line, fields[1], fields[2]); err != nil {
			return Entry{}, err
		}
		var err error
		if entry.ModeHead, err = parseMode(line, fields[3]); err != nil {
			return Entry{}, err
		}
		if entry.ModeIndex, err = parseMode(line, fields[4]); err != nil {
			return Entry{}, err
		}
		if entry.ModeWorktree, err = parseMode(line, fields[5]); err != nil {
			return Entry{}, err
		}
		entry.HeadOID = fields[6]
		entry.IndexOID = fields[7]
		if entry.ScoreKind, entry.Score, err = parseScore(line, fields[8]); err != nil {
			return Entry{}, err
		}
		paths := strings.SplitN(fields[9], "\t", 2)
		if len(paths) != 2 {
			return Entry{}, &StatusParseError{Line: line, Reason: "renamed entry needs tab-separated paths"}
		}
		entry.Path = paths[0]
		entry.OrigPath = paths[1]

	case 'u':
		// u <XY> <sub> <m1> <m2> <m3> <mW> <h1> <h2> <h3> <path>
		fields := strings.SplitN(line, " ", 11)
		if len(fields) != 11 {
			return Entry{}, &StatusParseError{Line: line, Reason: "unmerged entry needs 11 fields"}
		}
		if err := entry.parseCommon(line, fields[1], fields[2]); err != nil {
			return Entry{}, err
		}
		var err error
		if entry.Stage1.Mode, err = parseMode(line, fields[3]); err != nil {
			return Entry{}, err
		}
		if entry.Stage2.Mode, err = parseMode(line, fields[4]); err != nil {
			return Entry{}, err
		}
		if entry.Stage3.Mode, err = parseMode(line, fields[5]); err != nil {
			return Entry{}, err
		}
		if entry.ModeWorktree, err = parseMode(line, fields[6]); err != nil {
			return Entry{}, err
		}
		entry.Stage1.OID = fields[7]
		entry.Stage2.OID = fields[8]
		entry.Stage3.OID = fields[9]
		entry.Path = fields[10]

	case '?', '!':
		fields := strings.SplitN(line, " ", 2)
		if len(fields) != 2 || fields[1] == "" {
			return Entry{}, &StatusParseError{Line: line, Reason: "entry is missing a path"}
		}
		entry.Path = fields[1]

	default:
		return Entry{}, &StatusParseError{Line: line, Reason: "unknown entry format identifier (should be one of: 1 2 u ? !)"}
	}
	return entry, nil
}

// parseCommon fills the XY status letters and submodule state shared by
// changed, renamed and unmerged entries.
func (e *Entry) parseCommon(line, xy, sub string) error {
	if len(xy) != 2 {
		return &StatusParseError{Line: line, Reason: "status field needs two letters"}
	}
	e.Index = xy[0]
	e.Worktree = xy[1]

	if len(sub) != 4 {
		return &StatusParseError{Line: line, Reason: "submodule field needs four letters"}
	}
	e.Sub = Submodule{
		IsSubmodule:      sub[0] == 'S',
		CommitChanged:    sub[1] == 'C',
		TrackedChanges:   sub[2] == 'M',
		UntrackedChanges: sub[3] == 'U',
	}
	return nil
}

func parseMode(line, mode string) (string, error) {
	if len(mode) != 6 {
		return "", &StatusParseError{Line: line, Reason: "file mode needs six octal digits"}
	}
	return mode, nil
}

func parseScore(line, field string) (byte, int, error) {
	if len(field) < 2 || (field[0] != 'R' && field[0] != 'C') {
		return 0, 0, &StatusParseError{Line: line, Reason: "rename score needs R or C prefix"}
	}
	score, err := strconv.Atoi(field[1:])
	if err != nil {
		return 0, 0, &StatusParseError{Line: line, Reason: "bad rename score"}
	}
	return field[0], score, nil
}
