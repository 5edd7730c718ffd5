package pathier

import (
	"errors"
	"fmt"
	"io/fs"
	"time"
)

var now = time.Now

// WriteText writes data to p as text. Values that are not strings are
// converted first ([]byte as-is, fmt.Stringer via String, anything else via
// fmt.Sprint). A missing parent directory is created and the write retried
// once unless NoParents is given.
func (p *Path) WriteText(data any, opts ...Option) error {
	o := buildOptions(opts)

	text, ok := data.(string)
	if !ok {
		text = stringify(data)
		log().Debug("coerced data to text", "path", p.raw, "type", fmt.Sprintf("%T", data))
	}

	b, err := encodeText(text, o.encoding)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", p, err)
	}
	return p.write(b, o)
}

// WriteBytes writes data to p with the same parent recovery as WriteText.
func (p *Path) WriteBytes(data []byte, opts ...Option) error {
	return p.write(data, buildOptions(opts))
}

func stringify(data any) string {
	switch v := data.(type) {
	case []byte:
		return string(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func (p *Path) write(data []byte, o options) error {
	err := p.fs.WriteFile(p.raw, data, o.perm)
	if errors.Is(err, fs.ErrNotExist) && o.parents {
		log().Debug("creating missing parent directories", "path", p.raw)
		if err := p.Parent().Mkdir(); err != nil {
			return err
		}
		err = p.fs.WriteFile(p.raw, data, o.perm)
	}
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", p, err)
	}
	return nil
}

// Append adds data to the end of p, creating the file when missing. A newline
// is written after data unless WithoutNewline is given.
func (p *Path) Append(data string, opts ...Option) error {
	o := buildOptions(opts)
	if o.newline {
		data += "\n"
	}

	b, err := encodeText(data, o.encoding)
	if err != nil {
		return fmt.Errorf("failed to append to %s: %w", p, err)
	}
	if err := p.fs.AppendFile(p.raw, b, o.perm); err != nil {
		return fmt.Errorf("failed to append to %s: %w", p, err)
	}
	return nil
}

// ReadBytes returns the content of p and stamps the handle's last-read time.
func (p *Path) ReadBytes() ([]byte, error) {
	b, err := p.readFile()
	if err != nil {
		return nil, err
	}
	p.lastRead = now()
	return b, nil
}

// ReadText returns the content of p decoded with the WithEncoding option.
// The last-read time is only stamped once decoding succeeds.
func (p *Path) ReadText(opts ...Option) (string, error) {
	o := buildOptions(opts)

	b, err := p.readFile()
	if err != nil {
		return "", err
	}

	text, err := decodeText(b, o.encoding)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", p, err)
	}
	p.lastRead = now()
	return text, nil
}

func (p *Path) readFile() ([]byte, error) {
	b, err := p.fs.ReadFile(p.raw)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", p, err)
	}
	return b, nil
}

// LastRead returns when this handle last read its file.
func (p *Path) LastRead() (time.Time, bool) {
	return p.lastRead, !p.lastRead.IsZero()
}

// ModifiedSinceLastRead reports whether the file changed after this handle
// last read it. A handle that never read its file reports true.
func (p *Path) ModifiedSinceLastRead() bool {
	if p.lastRead.IsZero() {
		return true
	}
	mod, ok := p.ModTime()
	if !ok {
		return true
	}
	return mod.After(p.lastRead)
}
