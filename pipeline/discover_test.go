package pipeline

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscoverArchivesResolvesRelativeLinks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body>
<a href="/archive/Accounts_Bulk_Data-2022-01-01.zip">2022-01-01</a>
<a href="/archive/notes.txt">notes</a>
<a href="https://example.com/other/Accounts_Bulk_Data-2022-02-01.zip">2022-02-01</a>
</body></html>`))
	}))
	defer srv.Close()

	archives, err := DiscoverArchives(context.Background(), &Fetcher{}, srv.URL+"/index.html")
	require.NoError(t, err)
	require.Len(t, archives, 2)
	assert.Equal(t, srv.URL+"/archive/Accounts_Bulk_Data-2022-01-01.zip", archives[0])
	assert.Equal(t, "https://example.com/other/Accounts_Bulk_Data-2022-02-01.zip", archives[1])
}
