package errcode

import (
	"fmt"
	"io"
	"os"
	"syscall"

	"github.com/pelletier/go-toml/v2"
)

// Entry pairs a code with its symbolic name and description.
type Entry struct {
	Code        Code
	Name        string
	Description string
}

// Table is an ordered list of descriptions. When a code appears more than once
// the first entry wins.
type Table []Entry

// DefaultTable returns the descriptions built into the client.
func DefaultTable() Table {
	t := make(Table, len(defaultEntries))
	copy(t, defaultEntries)
	return t
}

var defaultEntries = Table{
	{Application(1000), "ERROR_TDNF_BASE", "Generic base error"},
	{Application(1001), "ERROR_TDNF_PACKAGE_REQUIRED", "Package name expected but was not found"},
	{Application(1002), "ERROR_TDNF_CONF_FILE_LOAD", "Error loading tdnf conf (/etc/tdnf/tdnf.conf)"},
	{Application(1003), "ERROR_TDNF_REPO_FILE_LOAD", "Error loading tdnf repo (normally under /etc/yum.repos.d/)"},
	{Application(1004), "ERROR_TDNF_INVALID_REPO_FILE", "Encountered an invalid repo file"},
	{Application(1005), "ERROR_TDNF_REPO_DIR_OPEN", "Error opening repo dir. Check if the repodir configured in tdnf.conf exists (usually /etc/yum.repos.d)"},
	{Application(1006), "ERROR_TDNF_NO_MATCH", "No matching packages"},
	{Application(1007), "ERROR_TDNF_SET_PROXY", "There was an error setting the proxy server"},
	{Application(1008), "ERROR_TDNF_SET_PROXY_USERPASS", "There was an error setting the proxy server user and pass"},
	{Application(1009), "ERROR_TDNF_NO_DISTROVERPKG", "No package found matching distroverpkg in tdnf.conf"},
	{Application(1010), "ERROR_TDNF_DISTROVERPKG_READ", "There was an error reading the version of the distroverpkg"},
	{Application(1011), "ERROR_TDNF_INVALID_ALLOCSIZE", "A memory allocation was requested with an invalid size"},
	{Application(1012), "ERROR_TDNF_STRING_TOO_LONG", "Requested string allocation size was too long"},
	{Application(1013), "ERROR_TDNF_NO_ENABLED_REPOS", "There are no enabled repos"},
	{Application(1014), "ERROR_TDNF_PACKAGELIST_EMPTY", "Packagelist is empty"},
	{Application(1015), "ERROR_TDNF_GOAL_CREATE", "Error creating goal"},
	{Application(1016), "ERROR_TDNF_CLEAN_UNSUPPORTED", "Clean type specified is not supported in this release. Please try clean all"},
	{Application(1017), "ERROR_TDNF_NO_DATA", "The command produced no data"},
	{Application(1018), "ERROR_TDNF_BAD_PATH", "The path given is not usable"},
	{CodeInvalidParameter, "ERROR_TDNF_INVALID_PARAMETER", "Invalid argument"},
	{CodeOutOfMemory, "ERROR_TDNF_OUT_OF_MEMORY", "Out of memory"},
	{System(syscall.EACCES), "ERROR_TDNF_ACCESS_DENIED", "Access denied"},
	{System(syscall.ENODATA), "ERROR_TDNF_NO_DATA_AVAILABLE", "No data available"},
}

// tableFile is the on-disk form of a Table. Codes use the numeric encoding,
// so system entries are written as errno + SystemBase.
//
//	[[error]]
//	code = 1001
//	name = "ERROR_TDNF_PACKAGE_REQUIRED"
//	description = "Package name expected but was not found"
type tableFile struct {
	Errors []tableFileEntry `toml:"error"`
}

type tableFileEntry struct {
	Code        uint32 `toml:"code"`
	Name        string `toml:"name"`
	Description string `toml:"description"`
}

// LoadTable decodes a TOML error table. Entry order is preserved.
func LoadTable(r io.Reader) (Table, error) {
	var f tableFile
	if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to parse error table: %w", err)
	}

	table := make(Table, 0, len(f.Errors))
	for i, e := range f.Errors {
		if e.Code == 0 {
			return nil, InvalidParameter("load error table", fmt.Sprintf("entry %d: code must be non-zero", i+1))
		}
		if e.Description == "" {
			return nil, InvalidParameter("load error table", fmt.Sprintf("entry %d (code %d): description is empty", i+1, e.Code))
		}
		table = append(table, Entry{
			Code:        FromNumeric(e.Code),
			Name:        e.Name,
			Description: e.Description,
		})
	}
	return table, nil
}

// LoadTableFile reads a TOML error table from path.
func LoadTableFile(path string) (Table, error) {
	f, err := os.Open(path) //nolint:gosec // Path comes from user configuration
	if err != nil {
		return nil, Wrap(err, "open", path)
	}
	defer f.Close() //nolint:errcheck // Read-only file

	table, err := LoadTable(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}
