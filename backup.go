package pathier

import (
	"fmt"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/Masterminds/sprig/v3"
)

// DefaultBackupTemplate names a backup of "notes.txt" as "notes_backup.txt",
// or "notes_backup_10-16-2026-03_04_05_PM.txt" with a timestamp.
const DefaultBackupTemplate = `{{ .Stem }}_backup{{ if .Timestamp }}_{{ .Time | date "01-02-2006-03_04_05_PM" }}{{ end }}{{ .Ext }}`

// BackupName is the data a backup template is rendered with.
type BackupName struct {
	Stem      string
	Ext       string
	Timestamp bool
	Time      time.Time
}

// RenderBackupName renders tmpl with sprig's function map.
func RenderBackupName(tmpl string, data BackupName) (string, error) {
	t, err := template.New("backup").Funcs(sprig.TxtFuncMap()).Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("failed to parse backup template: %w", err)
	}

	var sb strings.Builder
	if err := t.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("failed to render backup template: %w", err)
	}

	name := sb.String()
	if name == "" || name == "." || name == ".." || name != filepath.Base(name) {
		return "", fmt.Errorf("backup template produced invalid file name %q", name)
	}
	return name, nil
}

// Backup copies p to a sibling named by the backup template, replacing any
// earlier backup of the same name. It returns nil when p does not exist.
func (p *Path) Backup(withTimestamp bool, opts ...Option) (*Path, error) {
	if !p.Exists() {
		return nil, nil
	}

	o := buildOptions(opts)
	name, err := RenderBackupName(o.backupTemplate, BackupName{
		Stem:      p.Stem(),
		Ext:       p.Ext(),
		Timestamp: withTimestamp,
		Time:      now(),
	})
	if err != nil {
		return nil, err
	}

	dst := p.WithName(name)
	log().Debug("backing up", "path", p.raw, "backup", dst.raw)
	return p.Copy(dst, true)
}
