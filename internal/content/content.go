// Package content holds the static copy of the landing page: hero text,
// feature cards, code examples, download steps, footer links and the mascot.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
)

//go:embed site.toml
var defaultSite string

var ErrNoExamples = errors.New("site content has no examples")

// Site is the full page copy.
type Site struct {
	Name      string   `toml:"name"`
	RepoURL   string   `toml:"repo_url"`
	Copyright string   `toml:"copyright"`
	Mascot    string   `toml:"mascot"`
	Hero      Hero     `toml:"hero"`
	Features  Features `toml:"features"`
	Examples  Examples `toml:"examples"`
	Download  Download `toml:"download"`
	Footer    Footer   `toml:"footer"`
}

type Hero struct {
	Badge        string `toml:"badge"`
	Title        string `toml:"title"`
	Tagline      string `toml:"tagline"`
	PrimaryCTA   string `toml:"primary_cta"`
	SecondaryCTA string `toml:"secondary_cta"`
	SampleFile   string `toml:"sample_file"`
	Sample       string `toml:"sample"`
}

type Features struct {
	Title    string `toml:"title"`
	Subtitle string `toml:"subtitle"`
	Cards    []Card `toml:"cards"`
}

// Card is a feature or download card. A card with Action "repo" renders its
// Body as a button linking to the repository.
type Card struct {
	Icon        string `toml:"icon"`
	Title       string `toml:"title"`
	Description string `toml:"description"`
	Body        string `toml:"body"`
	Action      string `toml:"action"`
}

// CardActionRepo marks a card whose body is the repository link.
const CardActionRepo = "repo"

type Examples struct {
	Title    string    `toml:"title"`
	Subtitle string    `toml:"subtitle"`
	Items    []Example `toml:"items"`
}

// Example is one code sample shown behind a tab.
type Example struct {
	Title string `toml:"title"`
	Code  string `toml:"code"`
}

type Download struct {
	Title      string `toml:"title"`
	Subtitle   string `toml:"subtitle"`
	StepsTitle string `toml:"steps_title"`
	RepoCTA    string `toml:"repo_cta"`
	Cards      []Card `toml:"cards"`
	Steps      []Step `toml:"steps"`
}

// Step is one getting-started instruction. Commands render as a shell block.
type Step struct {
	Title    string   `toml:"title"`
	Text     string   `toml:"text"`
	Commands []string `toml:"commands"`
}

type Footer struct {
	Blurb   string         `toml:"blurb"`
	Columns []FooterColumn `toml:"columns"`
}

type FooterColumn struct {
	Title string `toml:"title"`
	Links []Link `toml:"links"`
}

type Link struct {
	Label string `toml:"label"`
	URL   string `toml:"url"`
}

// Default returns the embedded site content.
func Default() Site {
	var s Site
	if _, err := toml.Decode(defaultSite, &s); err != nil {
		panic(fmt.Sprintf("content: embedded site.toml: %v", err))
	}
	return s
}

// Load returns the embedded content with the TOML file at path decoded over
// it. An empty path yields the defaults.
func Load(path string) (Site, error) {
	s := Default()
	if path == "" {
		return s, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Site{}, fmt.Errorf("read content %s: %w", path, err)
	}
	if err := Parse(string(b), &s); err != nil {
		return Site{}, fmt.Errorf("content %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes TOML into s, keeping fields the document does not set. A list
// the document defines (cards, items, steps, columns) replaces the existing
// one outright rather than merging into its elements.
func Parse(doc string, s *Site) error {
	var scratch Site
	md, err := toml.Decode(doc, &scratch)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	resetLists(md, s)
	if _, err := toml.Decode(doc, s); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	if len(s.Examples.Items) == 0 {
		return ErrNoExamples
	}
	return nil
}

// resetLists clears every list in s that md defines.
func resetLists(md toml.MetaData, s *Site) {
	if md.IsDefined("features", "cards") {
		s.Features.Cards = nil
	}
	if md.IsDefined("examples", "items") {
		s.Examples.Items = nil
	}
	if md.IsDefined("download", "cards") {
		s.Download.Cards = nil
	}
	if md.IsDefined("download", "steps") {
		s.Download.Steps = nil
	}
	if md.IsDefined("footer", "columns") {
		s.Footer.Columns = nil
	}
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// Filename is the label shown above an example: the lowercased title with
// whitespace runs replaced by underscores and a .ligon extension.
func (e Example) Filename() string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(e.Title), "_") + ".ligon"
}
