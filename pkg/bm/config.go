package bm

import (
	"io/fs"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/temporal-IPA/phonetics/pkg/rules"
)

// ConfigFiles bundles everything parsed from a rule-resource directory:
// the per-name-type language lists, the language guessers and the rule
// repository. It is built once, read-only afterwards, and may be shared
// by any number of engines and goroutines.
type ConfigFiles struct {
	Languages *Languages
	Langs     *Langs
	Rules     *Rules
}

// LoadConfigFiles reads a rule-resource directory. Name types are
// discovered through their "<name_type>_languages.txt" file; for each
// one found, the "<name_type>_lang.txt" guessing rules and the full
// complement of rule files named by its language list must be present.
// Any missing or malformed resource fails the whole load.
func LoadConfigFiles(fsys fs.FS) (*ConfigFiles, error) {
	return LoadConfigFilesCharset(fsys, rules.UTF8)
}

// LoadConfigFilesCharset is LoadConfigFiles for resources stored in a
// legacy charset.
func LoadConfigFilesCharset(fsys fs.FS, charset rules.Charset) (*ConfigFiles, error) {
	read := func(name string) (string, error) {
		raw, err := fs.ReadFile(fsys, name)
		if err != nil {
			return "", errors.Wrapf(err, "read rule resource %s", name)
		}
		return rules.DecodeText(raw, charset)
	}

	languages, err := loadLanguages(read)
	if err != nil {
		return nil, err
	}
	if len(languages.sets) == 0 {
		return nil, errors.New("no language list found for any name type")
	}

	langs := &Langs{langs: make(map[NameType]*Lang)}
	for nameType, list := range languages.sets {
		filename := nameType.String() + "_lang.txt"
		content, err := read(filename)
		if err != nil {
			return nil, err
		}
		lang, err := parseLang(filename, content, list)
		if err != nil {
			return nil, err
		}
		langs.langs[nameType] = lang
	}

	ruleSet, err := buildRules(func(name string) (string, error) {
		return read(name + ".txt")
	}, languages)
	if err != nil {
		return nil, err
	}

	return &ConfigFiles{Languages: languages, Langs: langs, Rules: ruleSet}, nil
}

func loadLanguages(read func(string) (string, error)) (*Languages, error) {
	languages := &Languages{sets: make(map[NameType][]string)}

	for _, nameType := range nameTypes {
		filename := nameType.String() + "_languages.txt"
		content, err := read(filename)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, err
		}
		list, err := parseLanguageList(filename, content)
		if err != nil {
			return nil, err
		}
		languages.sets[nameType] = list
	}

	return languages, nil
}

// parseLanguageList parses a plain list resource, one language token per
// meaningful line.
func parseLanguageList(filename, content string) ([]string, error) {
	var list []string
	err := rules.ForEach(content, func(line rules.Line) error {
		if strings.ContainsAny(line.Text, " \t") {
			return errors.WithStack(&rules.ParseError{
				Filename: filename,
				Line:     line.Number,
				Content:  line.Text,
				Reason:   "can't recognize language list line",
			})
		}
		list = append(list, line.Text)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(list)
	return list, nil
}
