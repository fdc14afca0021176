package labs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

const stepsPath = "details.steps"

// prettyOptions mirror the two-space layout lab repositories keep their
// records in. Short arrays stay on one line.
var prettyOptions = &pretty.Options{
	Width:    80,
	Prefix:   "",
	Indent:   "  ",
	SortKeys: false,
}

// Step is the part of a lab step the updater reads.
type Step struct {
	Index  int
	Text   string
	Skills []string
}

// Record is a lab metadata document. It is edited in place so that fields
// the updater does not know about, and their order, survive a rewrite.
type Record struct {
	Path string
	raw  []byte
}

// ReadRecord loads and validates the record at path.
func ReadRecord(path string) (*Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}
	return ParseRecord(path, data)
}

// ParseRecord validates data as a lab record.
func ParseRecord(path string, data []byte) (*Record, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.Errorf("%s is not valid JSON", path)
	}
	if steps := gjson.GetBytes(data, stepsPath); !steps.IsArray() {
		return nil, errors.Errorf("%s has no %s array", path, stepsPath)
	}
	return &Record{Path: path, raw: data}, nil
}

// Steps returns the steps in document order. A missing skills field reads
// as an empty list.
func (r *Record) Steps() []Step {
	var steps []Step
	gjson.GetBytes(r.raw, stepsPath).ForEach(func(key, value gjson.Result) bool {
		step := Step{
			Index: int(key.Int()),
			Text:  value.Get("text").String(),
		}
		value.Get("skills").ForEach(func(_, skill gjson.Result) bool {
			step.Skills = append(step.Skills, skill.String())
			return true
		})
		steps = append(steps, step)
		return true
	})
	return steps
}

// TextPath resolves a step's text file relative to the record.
func (r *Record) TextPath(step Step) string {
	return filepath.Join(filepath.Dir(r.Path), step.Text)
}

// SetSkills replaces the skills list of step i.
func (r *Record) SetSkills(i int, skills []string) error {
	if skills == nil {
		skills = []string{}
	}
	raw, err := sjson.SetBytes(r.raw, fmt.Sprintf("%s.%d.skills", stepsPath, i), skills)
	if err != nil {
		return errors.Wrapf(err, "failed to set skills of step %d in %s", i, r.Path)
	}
	r.raw = raw
	return nil
}

// Bytes returns the record re-indented for writing.
func (r *Record) Bytes() []byte {
	return pretty.PrettyOptions(r.raw, prettyOptions)
}

// writeFileAtomic replaces path with data via a temporary file in the same
// directory, keeping the original permissions.
func writeFileAtomic(path string, data []byte) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return errors.Wrapf(err, "failed to create temp file for %s", path)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrapf(err, "failed to write %s", tmpName)
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, "failed to close %s", tmpName)
	}
	if err := os.Chmod(tmpName, mode); err != nil {
		return errors.Wrapf(err, "failed to chmod %s", tmpName)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return errors.Wrapf(err, "failed to replace %s", path)
	}
	return nil
}
