package mock

import "github.com/fwojciec/optcg"

var _ optcg.LocaleSource = (*LocaleSource)(nil)

// LocaleSource is a mock implementation of optcg.LocaleSource.
type LocaleSource struct {
	LoadFn func(lang string) (*optcg.Locale, error)
	ListFn func() ([]string, error)
}

func (s *LocaleSource) Load(lang string) (*optcg.Locale, error) {
	return s.LoadFn(lang)
}

func (s *LocaleSource) List() ([]string, error) {
	return s.ListFn()
}
