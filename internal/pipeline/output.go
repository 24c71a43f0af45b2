package pipeline

import (
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/noteflow/internal/domain"
)

// defaultOutputPath derives the document location from the input identity,
// subject and format: <output dir>/<stem>_<subject>_notes.<ext>.
func (o *implOrchestrator) defaultOutputPath(source domain.AudioSource, params RunParams) string {
	stem := sourceStem(source)
	name := fmt.Sprintf("%s_%s_notes.%s", stem, sanitizeName(params.Subject), params.Format.Extension())
	return filepath.Join(o.cfg.Paths.Output, name)
}

func sourceStem(source domain.AudioSource) string {
	switch source.Kind {
	case domain.SourceLocalFile:
		base := filepath.Base(source.Path)
		return sanitizeName(strings.TrimSuffix(base, filepath.Ext(base)))
	case domain.SourceMicrophone:
		return "recording_" + time.Now().Format("20060102_150405")
	case domain.SourceRemoteURL:
		if u, err := url.Parse(source.URL); err == nil {
			if seg := path.Base(u.Path); seg != "" && seg != "/" && seg != "." {
				return sanitizeName(strings.TrimSuffix(seg, path.Ext(seg)))
			}
			return sanitizeName(u.Host)
		}
		return "video"
	default:
		return "notes"
	}
}

func sanitizeName(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		case r == ' ':
			return '_'
		default:
			return '-'
		}
	}, s)
	if s == "" {
		return "notes"
	}
	return s
}
