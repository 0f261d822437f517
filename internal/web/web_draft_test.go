package web_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDraftRemovesPlayerFromBoard(t *testing.T) {
	ts := newWebTestServer(t)
	ts.get("/")

	ts.draftPlayer("Nikola Jokic")

	rr := ts.get("/")
	doc := parseHTML(rr.Body)
	assertNotContainsElement(t, doc, `table#players tr[data-player="Nikola Jokic"]`)
	assertContainsElement(t, doc, `#drafted li[data-player="Nikola Jokic"]`)
}

func TestDraftShowsFlash(t *testing.T) {
	ts := newWebTestServer(t)
	ts.get("/")

	rr := ts.post("/draft", url.Values{"player": {"Nikola Jokic"}})
	page := ts.followRedirect(rr)

	doc := parseHTML(page.Body)
	assertContainsText(t, doc, ".flash-success", "Nikola Jokic")
}

func TestDraftUnknownPlayerShowsError(t *testing.T) {
	ts := newWebTestServer(t)
	ts.get("/")

	rr := ts.post("/draft", url.Values{"player": {"Michael Jordan"}})
	require.Equal(t, http.StatusSeeOther, rr.Code)

	page := ts.followRedirect(rr)
	doc := parseHTML(page.Body)
	assertContainsElement(t, doc, ".flash-error")
}

func TestDraftWithoutPlayerNameShowsError(t *testing.T) {
	ts := newWebTestServer(t)
	ts.get("/")

	rr := ts.post("/draft", url.Values{})
	require.Equal(t, http.StatusSeeOther, rr.Code)

	page := ts.followRedirect(rr)
	doc := parseHTML(page.Body)
	assertContainsElement(t, doc, ".flash-error")
}

func TestUndraftRestoresPlayer(t *testing.T) {
	ts := newWebTestServer(t)
	ts.get("/")
	ts.draftPlayer("Nikola Jokic")

	rr := ts.post("/undraft", url.Values{"player": {"Nikola Jokic"}})
	require.Equal(t, http.StatusSeeOther, rr.Code)

	page := ts.get("/")
	doc := parseHTML(page.Body)
	assertContainsElement(t, doc, `table#players tr[data-player="Nikola Jokic"]`)
	assertNotContainsElement(t, doc, `#drafted li[data-player="Nikola Jokic"]`)
}

func TestClearDraft(t *testing.T) {
	ts := newWebTestServer(t)
	ts.get("/")
	ts.draftPlayer("Nikola Jokic")
	ts.draftPlayer("Luka Doncic")

	rr := ts.post("/draft/clear", nil)
	require.Equal(t, http.StatusSeeOther, rr.Code)

	page := ts.get("/")
	doc := parseHTML(page.Body)
	assertContainsElement(t, doc, `table#players tr[data-player="Nikola Jokic"]`)
	assertContainsElement(t, doc, `table#players tr[data-player="Luka Doncic"]`)
	assertNotContainsElement(t, doc, "#drafted li")
}

func TestDraftStateIsPerSession(t *testing.T) {
	first := newWebTestServer(t)
	first.get("/")
	first.draftPlayer("Nikola Jokic")

	// A fresh jar simulates a different visitor on the same server
	second := &webTestServer{
		t:       t,
		handler: first.handler,
		app:     first.app,
		cookies: newCookieJar(),
	}

	rr := second.get("/")
	doc := parseHTML(rr.Body)
	assertContainsElement(t, doc, `table#players tr[data-player="Nikola Jokic"]`)
}

func TestDraftSurvivesRefresh(t *testing.T) {
	ts := newWebTestServer(t)
	ts.get("/")
	ts.draftPlayer("Nikola Jokic")

	ts.post("/refresh", nil)

	rr := ts.get("/")
	doc := parseHTML(rr.Body)
	assertNotContainsElement(t, doc, `table#players tr[data-player="Nikola Jokic"]`)
	assertContainsElement(t, doc, `#drafted li[data-player="Nikola Jokic"]`)
}

func TestSummaryCountsDraftedPlayers(t *testing.T) {
	ts := newWebTestServer(t)
	ts.get("/")
	ts.draftPlayer("Nikola Jokic")

	rr := ts.get("/")
	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, "#summary-drafted", "1")
}
