package setup

import (
	"fmt"
	"io"

	"gitmarks/internal/prompt"
	"gitmarks/internal/settings"
)

const welcome = `
    Welcome to the gitmarks configurator. This will set up a couple of local
    repositories for you to use as your gitmarks system. Gitmarks maintains
    2-3 repositories:
     - 1 for public use (world+dog read)
     - 1 for friends use (with some encryption)
     - 1 (optional) for content. This can be non-repo, or nonexistent
`

// carriedKeys are not asked about; their template values are written back
// unchanged so the settings file always names every folder explicitly.
var carriedKeys = []string{
	settings.KeyPublicRepoDir,
	settings.KeyPrivateRepoDir,
	settings.KeyContentDir,
	settings.KeyBookmarkSubPath,
	settings.KeyTagSubPath,
	settings.KeyMsgSubPath,
	settings.KeyHTMLSubPath,
}

var optionalKeys = map[string]bool{
	settings.KeyRemotePublicRepo:  true,
	settings.KeyRemotePrivateRepo: true,
	settings.KeyRemoteContentRepo: true,
}

// Questionnaire collects the override mapping for one configure run.
type Questionnaire struct {
	prompter *prompt.Prompter
	out      io.Writer
	defaults *settings.Document
}

// NewQuestionnaire asks questions through p, offering the values in defaults.
func NewQuestionnaire(p *prompt.Prompter, out io.Writer, defaults *settings.Document) *Questionnaire {
	if defaults == nil {
		defaults = settings.Defaults()
	}
	if out == nil {
		out = io.Discard
	}
	return &Questionnaire{prompter: p, out: out, defaults: defaults}
}

// Collect runs the questionnaire. It returns ok=false when the user declines
// to start, in which case the overrides are nil.
func (q *Questionnaire) Collect() (settings.Overrides, bool, error) {
	fmt.Fprint(q.out, welcome)
	ready, err := q.prompter.YesNo("Ready to start?", true)
	if err != nil {
		return nil, false, err
	}
	if !ready {
		fmt.Fprintln(q.out, "Goodbye! Share and Enjoy.")
		return nil, false, nil
	}

	o := settings.Overrides{}
	steps := []func(settings.Overrides) error{
		q.text(settings.KeyBaseDir, "What base directory do you want for your repos?"),
		q.yesNo(settings.KeyGetContent, "Do you want to pull down content of page when you download a bookmark?"),
		q.integer(settings.KeyContentCacheSizeMB, "Do you want to set a maximum MB of content cache?"),
		q.text(settings.KeyRemotePublicRepo, "Specify remote git repository for your public bookmarks"),
		q.text(settings.KeyRemotePrivateRepo, "Specify remote git repository for your private bookmarks?"),
		q.yesNo(settings.KeyContentAsRepo, "Do you want your content folder to be stored as a repository?"),
		q.contentRemote,
		q.heading("-- Pointless Info --"),
		q.text(settings.KeyFavoriteColor, "What is your favorite color?"),
		q.text(settings.KeyUnladenSwallowGuess, "What is the windspeed velocity of an unladen swallow?"),
		q.heading("-- User Info --"),
		q.text(settings.KeyUserName, "What username do you want to use?"),
		q.text(settings.KeyUserEmail, "What email do you want to use?"),
		q.text(settings.KeyMachineName, "What is the name of this computer?"),
	}
	for _, step := range steps {
		if err := step(o); err != nil {
			return nil, false, err
		}
	}

	o[settings.KeySaveContentToRepo] = o[settings.KeyContentAsRepo]
	for _, key := range carriedKeys {
		if v, ok := q.defaults.Get(key); ok {
			o[key] = v
		}
	}
	return o, true, nil
}

func (q *Questionnaire) def(key string) settings.Value {
	if v, ok := q.defaults.Get(key); ok {
		return v
	}
	return settings.Default(key)
}

func (q *Questionnaire) heading(title string) func(settings.Overrides) error {
	return func(settings.Overrides) error {
		q.prompter.Println(title)
		return nil
	}
}

// text asks for a string. Remote keys, and keys whose default is null,
// accept "none" and store null when left empty.
func (q *Questionnaire) text(key, message string) func(settings.Overrides) error {
	return func(o settings.Overrides) error {
		def := q.def(key)
		s, _ := def.Str()
		if def.IsNull() || optionalKeys[key] {
			answer, err := q.prompter.OptionalText(message, s)
			if err != nil {
				return err
			}
			o[key] = settings.OptionalString(answer)
			return nil
		}
		answer, err := q.prompter.Text(message, s)
		if err != nil {
			return err
		}
		o[key] = settings.String(answer)
		return nil
	}
}

func (q *Questionnaire) yesNo(key, message string) func(settings.Overrides) error {
	return func(o settings.Overrides) error {
		def, _ := q.def(key).Boolean()
		answer, err := q.prompter.YesNo(message, def)
		if err != nil {
			return err
		}
		o[key] = settings.Bool(answer)
		return nil
	}
}

func (q *Questionnaire) integer(key, message string) func(settings.Overrides) error {
	return func(o settings.Overrides) error {
		def, _ := q.def(key).Int64()
		answer, err := q.prompter.Int(message, int(def))
		if err != nil {
			return err
		}
		o[key] = settings.Int(int64(answer))
		return nil
	}
}

// contentRemote is only asked when content is kept as a repository.
func (q *Questionnaire) contentRemote(o settings.Overrides) error {
	if asRepo, _ := o[settings.KeyContentAsRepo].Boolean(); !asRepo {
		o[settings.KeyRemoteContentRepo] = settings.Null()
		return nil
	}
	return q.text(settings.KeyRemoteContentRepo, "What is the git repository for your content?")(o)
}
