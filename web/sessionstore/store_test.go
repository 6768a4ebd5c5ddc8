package sessionstore

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/MukulParasar/PRODIGY-FS-02/database"
	"github.com/MukulParasar/PRODIGY-FS-02/database/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) {
	dbPath := "test.db"
	os.Remove(dbPath)
	require.NoError(t, database.InitDB(dbPath))
}

func teardown() {
	db, _ := database.GetDB().DB()
	db.Close()
	os.Remove("test.db")
}

func TestStoreRoundTrip(t *testing.T) {
	setup(t)
	defer teardown()

	store := NewStore([]byte("test-secret"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	sess, err := store.New(req, "ems")
	require.NoError(t, err)
	assert.True(t, sess.IsNew)

	sess.Values["user"] = "admin@x.com"
	require.NoError(t, store.Save(req, w, sess))

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)

	// a session row was written
	var count int64
	database.GetDB().Model(model.Session{}).Count(&count)
	assert.EqualValues(t, 1, count)

	// a second request carrying the cookie restores the values
	req2 := httptest.NewRequest(http.MethodGet, "/", nil)
	req2.AddCookie(cookies[0])
	sess2, err := store.New(req2, "ems")
	require.NoError(t, err)
	assert.False(t, sess2.IsNew)
	assert.Equal(t, "admin@x.com", sess2.Values["user"])
}

func TestStoreExpiredSessionIsNotRestored(t *testing.T) {
	setup(t)
	defer teardown()

	store := NewStore([]byte("test-secret"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	sess, err := store.New(req, "ems")
	require.NoError(t, err)
	sess.Values["user"] = "admin@x.com"
	require.NoError(t, store.Save(req, w, sess))

	// force the row past its expiry
	db := database.GetDB()
	require.NoError(t, db.Model(model.Session{}).
		Where("sid = ?", sess.ID).
		Update("expire", time.Now().Add(-time.Minute)).Error)

	req2 := httptest.NewRequest(http.MethodGet, "/", nil)
	req2.AddCookie(w.Result().Cookies()[0])
	sess2, err := store.New(req2, "ems")
	require.NoError(t, err)
	assert.True(t, sess2.IsNew, "expired session must not be restored")
	assert.Nil(t, sess2.Values["user"])
}

func TestStoreDeleteOnNegativeMaxAge(t *testing.T) {
	setup(t)
	defer teardown()

	store := NewStore([]byte("test-secret"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	sess, err := store.New(req, "ems")
	require.NoError(t, err)
	sess.Values["user"] = "admin@x.com"
	require.NoError(t, store.Save(req, w, sess))

	sess.Options.MaxAge = -1
	require.NoError(t, store.Save(req, httptest.NewRecorder(), sess))

	var count int64
	database.GetDB().Model(model.Session{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestPurgeExpired(t *testing.T) {
	setup(t)
	defer teardown()

	db := database.GetDB()
	require.NoError(t, db.Create(&model.Session{
		Sid:     "live",
		Payload: []byte{1},
		Expire:  time.Now().Add(time.Hour),
	}).Error)
	require.NoError(t, db.Create(&model.Session{
		Sid:     "stale",
		Payload: []byte{1},
		Expire:  time.Now().Add(-time.Hour),
	}).Error)

	purged, err := PurgeExpired()
	require.NoError(t, err)
	assert.EqualValues(t, 1, purged)

	var remaining []model.Session
	require.NoError(t, db.Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.Equal(t, "live", remaining[0].Sid)
}
