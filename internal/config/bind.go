package config

import (
	"fmt"

	"gitmarks/internal/settings"
)

type binding struct {
	key  string
	bind func(*Config, settings.Value) error
}

var bindings = []binding{
	{settings.KeyBaseDir, text(func(c *Config) *string { return &c.Paths.BaseDir })},
	{settings.KeyPublicRepoDir, text(func(c *Config) *string { return &c.Paths.PublicRepoDir })},
	{settings.KeyPrivateRepoDir, text(func(c *Config) *string { return &c.Paths.PrivateRepoDir })},
	{settings.KeyContentDir, text(func(c *Config) *string { return &c.Paths.ContentDir })},
	{settings.KeyBookmarkSubPath, text(func(c *Config) *string { return &c.Layout.BookmarkSubPath })},
	{settings.KeyTagSubPath, text(func(c *Config) *string { return &c.Layout.TagSubPath })},
	{settings.KeyMsgSubPath, text(func(c *Config) *string { return &c.Layout.MsgSubPath })},
	{settings.KeyHTMLSubPath, text(func(c *Config) *string { return &c.Layout.HTMLSubPath })},
	{settings.KeyRemotePublicRepo, optionalText(func(c *Config) *string { return &c.Remotes.Public })},
	{settings.KeyRemotePrivateRepo, optionalText(func(c *Config) *string { return &c.Remotes.Private })},
	{settings.KeyRemoteContentRepo, optionalText(func(c *Config) *string { return &c.Remotes.Content })},
	{settings.KeyGetContent, flag(func(c *Config) *bool { return &c.Content.GetContent })},
	{settings.KeyContentCacheSizeMB, integer(func(c *Config) *int { return &c.Content.CacheSizeMB })},
	{settings.KeyContentAsRepo, flag(func(c *Config) *bool { return &c.Content.AsRepo })},
	{settings.KeySaveContentToRepo, flag(func(c *Config) *bool { return &c.Content.SaveToRepo })},
	{settings.KeyUserName, optionalText(func(c *Config) *string { return &c.User.Name })},
	{settings.KeyUserEmail, optionalText(func(c *Config) *string { return &c.User.Email })},
	{settings.KeyMachineName, optionalText(func(c *Config) *string { return &c.User.MachineName })},
	{settings.KeyFavoriteColor, optionalText(func(c *Config) *string { return &c.Trivia.FavoriteColor })},
	{settings.KeyUnladenSwallowGuess, optionalText(func(c *Config) *string { return &c.Trivia.UnladenSwallowGuess })},
	{settings.KeyGitBackend, text(func(c *Config) *string { return &c.Git.Backend })},
	{settings.KeyGitBinary, text(func(c *Config) *string { return &c.Git.Binary })},
	{settings.KeyLogLevel, text(func(c *Config) *string { return &c.Logging.Level })},
	{settings.KeyLogFormat, text(func(c *Config) *string { return &c.Logging.Format })},
}

// apply copies typed values from doc onto c. Keys the document does not
// assign are left untouched; unrecognized keys are ignored.
func (c *Config) apply(path string, doc *settings.Document) error {
	for _, b := range bindings {
		value, ok := doc.Get(b.key)
		if !ok {
			continue
		}
		if err := b.bind(c, value); err != nil {
			return &settings.Error{Path: path, Err: fmt.Errorf("%s: %w", b.key, err)}
		}
	}
	return nil
}

func kindError(want settings.Kind, got settings.Value) error {
	return fmt.Errorf("expected %s value, got %s %s", want, got.Kind(), got.Literal())
}

func text(field func(*Config) *string) func(*Config, settings.Value) error {
	return func(c *Config, v settings.Value) error {
		s, ok := v.Str()
		if !ok {
			return kindError(settings.KindString, v)
		}
		*field(c) = s
		return nil
	}
}

func optionalText(field func(*Config) *string) func(*Config, settings.Value) error {
	return func(c *Config, v settings.Value) error {
		if v.IsNull() {
			*field(c) = ""
			return nil
		}
		return text(field)(c, v)
	}
}

func integer(field func(*Config) *int) func(*Config, settings.Value) error {
	return func(c *Config, v settings.Value) error {
		n, ok := v.Int64()
		if !ok {
			return kindError(settings.KindInt, v)
		}
		*field(c) = int(n)
		return nil
	}
}

func flag(field func(*Config) *bool) func(*Config, settings.Value) error {
	return func(c *Config, v settings.Value) error {
		b, ok := v.Boolean()
		if !ok {
			return kindError(settings.KindBool, v)
		}
		*field(c) = b
		return nil
	}
}
