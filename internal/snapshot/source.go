package snapshot

import (
	"context"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ggonzalez94/synth-cli/internal/deeplink"
	clierr "github.com/ggonzalez94/synth-cli/internal/errors"
	"github.com/ggonzalez94/synth-cli/internal/httpx"
	"github.com/ggonzalez94/synth-cli/internal/registry"
)

// Source produces a snapshot document.
type Source interface {
	Fetch(ctx context.Context) (Document, error)
	Remote() bool
	String() string
}

// FileSource reads a YAML or JSON document from disk.
type FileSource struct {
	Path string
}

func (s FileSource) Fetch(_ context.Context) (Document, error) {
	buf, err := os.ReadFile(s.Path)
	if err != nil {
		return Document{}, clierr.Wrap(clierr.CodeUsage, "read snapshot file", err)
	}
	var doc Document
	if err := yaml.Unmarshal(buf, &doc); err != nil {
		return Document{}, clierr.Wrap(clierr.CodeUsage, "parse snapshot file", err)
	}
	return doc, nil
}

func (s FileSource) Remote() bool { return false }

func (s FileSource) String() string { return "file:" + s.Path }

// HTTPSource fetches a JSON document from a snapshot service.
type HTTPSource struct {
	URL    string
	Client *httpx.Client
}

func (s HTTPSource) Fetch(ctx context.Context) (Document, error) {
	if !registry.IsAllowedSnapshotURL(s.URL) {
		return Document{}, clierr.New(clierr.CodeUsage, fmt.Sprintf("snapshot url must be https (or http on loopback): %s", s.URL))
	}
	var doc Document
	if _, err := httpx.GetJSON(ctx, s.Client, s.URL, &doc); err != nil {
		return Document{}, err
	}
	return doc, nil
}

func (s HTTPSource) Remote() bool { return true }

func (s HTTPSource) String() string { return s.URL }

// NewSource picks the file source when path is set, else the HTTP source.
func NewSource(path, url string, client *httpx.Client) (Source, error) {
	path, url = strings.TrimSpace(path), strings.TrimSpace(url)
	switch {
	case path != "" && url != "":
		return nil, clierr.New(clierr.CodeUsage, "use either a snapshot file or a snapshot url, not both")
	case path != "":
		return FileSource{Path: path}, nil
	case url != "":
		return HTTPSource{URL: url, Client: client}, nil
	default:
		return nil, clierr.New(clierr.CodeUsage, "a market snapshot is required (--snapshot-file or --snapshot-url)")
	}
}

// Load fetches src and converts it for chainID.
func Load(ctx context.Context, src Source, chainID int64) (deeplink.Snapshot, error) {
	doc, err := src.Fetch(ctx)
	if err != nil {
		return deeplink.Snapshot{}, err
	}
	return doc.Snapshot(chainID)
}
