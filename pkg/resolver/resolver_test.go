package resolver_test

import (
	"sync"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lexicat/pkg/catalog"
	"github.com/dmitrymomot/lexicat/pkg/locale"
	"github.com/dmitrymomot/lexicat/pkg/resolver"
)

// loadBundle builds the canonical test fixture: an English primary
// catalog with German and Japanese translations, each overriding a
// different subset of identifiers.
func loadBundle(t *testing.T) *catalog.Bundle {
	t.Helper()

	fsys := fstest.MapFS{
		"strings.xml": &fstest.MapFile{Data: []byte(`<resources language="en">
			<translation language="de"/>
			<translation language="ja"/>
			<string name="greeting">Hello</string>
			<string name="yes">yes</string>
			<string name="no">no</string>
		</resources>`)},
		"strings.de.xml": &fstest.MapFile{Data: []byte(`<resources>
			<string name="yes">ja</string>
		</resources>`)},
		"strings.ja.xml": &fstest.MapFile{Data: []byte(`<resources>
			<string name="greeting">今日は</string>
		</resources>`)},
	}

	bundle, err := catalog.Load(fsys, "strings.xml")
	require.NoError(t, err)
	return bundle
}

func prefs(langs ...string) []locale.Locale {
	out := make([]locale.Locale, len(langs))
	for i, lang := range langs {
		out[i] = locale.Locale{Language: lang}
	}
	return out
}

func TestResolve(t *testing.T) {
	t.Parallel()

	t.Run("walks preferences before falling back to primary", func(t *testing.T) {
		t.Parallel()
		r, err := resolver.New(loadBundle(t), resolver.WithPreferences(prefs("ja", "de")...))
		require.NoError(t, err)

		assert.Equal(t, "今日は", r.T("greeting"))
		assert.Equal(t, "ja", r.T("yes"))
		assert.Equal(t, "no", r.T("no"))
	})

	t.Run("first matching preference wins over later tables", func(t *testing.T) {
		t.Parallel()

		// yes exists only in de: with ja preferred first, de still answers.
		r, err := resolver.New(loadBundle(t), resolver.WithPreferences(prefs("ja", "de")...))
		require.NoError(t, err)
		assert.Equal(t, "ja", r.T("yes"))

		// greeting exists in ja: ja answers regardless of de's position.
		r2, err := resolver.New(loadBundle(t), resolver.WithPreferences(prefs("de", "ja")...))
		require.NoError(t, err)
		assert.Equal(t, "今日は", r2.T("greeting"))
	})

	t.Run("empty preference list answers from the primary table", func(t *testing.T) {
		t.Parallel()
		r, err := resolver.New(loadBundle(t))
		require.NoError(t, err)

		for id, want := range map[string]string{"greeting": "Hello", "yes": "yes", "no": "no"} {
			got, err := r.Resolve(id)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	})

	t.Run("unmatched preferences silently fall back", func(t *testing.T) {
		t.Parallel()
		r, err := resolver.New(loadBundle(t), resolver.WithPreferences(prefs("fr", "it")...))
		require.NoError(t, err)
		assert.Equal(t, "Hello", r.T("greeting"))
	})

	t.Run("primary ids never miss", func(t *testing.T) {
		t.Parallel()
		r, err := resolver.New(loadBundle(t), resolver.WithPreferences(prefs("ja", "de")...))
		require.NoError(t, err)

		for _, id := range []string{"greeting", "yes", "no"} {
			assert.True(t, r.Has(id))
			_, err := r.Resolve(id)
			assert.NoError(t, err)
		}
	})

	t.Run("unknown identifier is an explicit error", func(t *testing.T) {
		t.Parallel()
		r, err := resolver.New(loadBundle(t))
		require.NoError(t, err)

		assert.False(t, r.Has("invented"))
		_, err = r.Resolve("invented")
		require.ErrorIs(t, err, resolver.ErrUnknownIdentifier)
		assert.Equal(t, "invented", r.T("invented"))
	})
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("rejects nil bundle", func(t *testing.T) {
		t.Parallel()
		_, err := resolver.New(nil)
		require.ErrorIs(t, err, resolver.ErrNilBundle)
	})

	t.Run("rejects non-positive max preferences", func(t *testing.T) {
		t.Parallel()
		_, err := resolver.New(loadBundle(t), resolver.WithMaxPreferences(0))
		require.ErrorIs(t, err, resolver.ErrInvalidMaxPreferences)
	})

	t.Run("truncates preferences to the configured max", func(t *testing.T) {
		t.Parallel()
		r, err := resolver.New(loadBundle(t),
			resolver.WithPreferences(prefs("fr", "ja", "de")...),
			resolver.WithMaxPreferences(2),
		)
		require.NoError(t, err)
		require.Len(t, r.Preferences(), 2)

		// de was truncated away, so its override no longer applies.
		assert.Equal(t, "yes", r.T("yes"))
		assert.Equal(t, "今日は", r.T("greeting"))
	})

	t.Run("exposes sorted languages and primary language", func(t *testing.T) {
		t.Parallel()
		r, err := resolver.New(loadBundle(t))
		require.NoError(t, err)
		assert.Equal(t, "en", r.Language())
		assert.Equal(t, []string{"de", "en", "ja"}, r.Languages())
	})
}

func TestEnvPreferences(t *testing.T) {
	// t.Setenv forbids t.Parallel.
	t.Setenv("LANGUAGE", "ja:de")
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "")

	r, err := resolver.New(loadBundle(t), resolver.WithEnvPreferences())
	require.NoError(t, err)
	assert.Equal(t, "今日は", r.T("greeting"))
	assert.Equal(t, "ja", r.T("yes"))
	assert.Equal(t, "no", r.T("no"))
}

func TestConcurrentLookups(t *testing.T) {
	t.Parallel()

	r, err := resolver.New(loadBundle(t), resolver.WithPreferences(prefs("ja", "de")...))
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				assert.Equal(t, "今日は", r.T("greeting"))
				assert.Equal(t, "ja", r.T("yes"))
				assert.Equal(t, "no", r.T("no"))
				assert.True(t, r.Has("no"))
			}
		}()
	}
	wg.Wait()
}
