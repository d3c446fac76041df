//go:build integration || !unit

package integration

import (
	"database/sql"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	_ "github.com/go-sql-driver/mysql"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	"github.com/Navya-Das/HotelReservation/internal/adapters/flash"
	server "github.com/Navya-Das/HotelReservation/internal/adapters/http_server"
	"github.com/Navya-Das/HotelReservation/internal/adapters/view"
	"github.com/Navya-Das/HotelReservation/internal/app"
	mysqlrepo "github.com/Navya-Das/HotelReservation/internal/storage/mysql"
)

func mustEnv(t *testing.T, k string) string {
	t.Helper()
	v := os.Getenv(k)
	if v == "" {
		t.Fatalf("%s not set; export it (e.g. MIGRATIONS_DIR=/path/to/migrations)", k)
	}
	return v
}

func applyMigrations(t *testing.T, db *sql.DB) {
	t.Helper()
	dir := mustEnv(t, "MIGRATIONS_DIR")

	ents, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read migrations dir: %v", err)
	}
	var files []string
	for _, e := range ents {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".sql" {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	if len(files) == 0 {
		t.Fatalf("no .sql files in %s", dir)
	}
	sort.Strings(files)
	for _, f := range files {
		sqlBytes, err := os.ReadFile(f)
		if err != nil {
			t.Fatalf("read %s: %v", f, err)
		}
		if _, err := db.Exec(string(sqlBytes)); err != nil {
			t.Fatalf("exec %s: %v", f, err)
		}
	}
}

// startStack boots MySQL in Docker, an in-process Redis, and the full HTTP
// stack on a test listener.
func startStack(t *testing.T) *httptest.Server {
	t.Helper()

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("dockertest: %v", err)
	}
	runOpts := &dockertest.RunOptions{
		Repository: "mysql",
		Tag:        "8.0.36",
		Env: []string{
			"MYSQL_ROOT_PASSWORD=root",
			"MYSQL_DATABASE=hotels",
		},
	}
	resource, err := pool.RunWithOptions(runOpts, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("run mysql: %v", err)
	}
	t.Cleanup(func() { _ = pool.Purge(resource) })

	dsn := fmt.Sprintf("root:root@tcp(127.0.0.1:%s)/hotels?parseTime=true&multiStatements=true&charset=utf8mb4,utf8&loc=UTC",
		resource.GetPort("3306/tcp"))

	var db *sql.DB
	if err := pool.Retry(func() error {
		var e error
		db, e = sql.Open("mysql", dsn)
		if e != nil {
			return e
		}
		return db.Ping()
	}); err != nil {
		t.Fatalf("connect mysql: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	applyMigrations(t, db)

	mr := miniredis.RunT(t)
	views, err := view.New()
	if err != nil {
		t.Fatalf("templates: %v", err)
	}

	srv := server.New()
	limiter := server.NewSubmitLimiter(100)
	srv.MountHandlers(&server.Handlers{
		Hotels:   app.NewHotelService(mysqlrepo.NewHotelRepo(db)),
		Rooms:    app.NewRoomService(mysqlrepo.NewRoomRepo(db)),
		Views:    views,
		Flash:    flash.New(mr.Addr(), "", 0, time.Minute),
		FlashTTL: time.Minute,
	}, limiter.Middleware)

	ts := httptest.NewServer(srv.Mux())
	t.Cleanup(ts.Close)
	return ts
}

func browse(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookiejar: %v", err)
	}
	return &http.Client{Jar: jar}
}

func getBody(t *testing.T, c *http.Client, u string) (int, string) {
	t.Helper()
	res, err := c.Get(u)
	if err != nil {
		t.Fatalf("GET %s: %v", u, err)
	}
	defer res.Body.Close()
	b, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("read %s: %v", u, err)
	}
	return res.StatusCode, string(b)
}

func TestHTTP_EndToEnd_HotelAndRooms(t *testing.T) {
	ts := startStack(t)
	c := browse(t)

	// create a hotel; the client follows the redirect and lands on the
	// list with the one-time banner
	res, err := c.PostForm(ts.URL+"/hotels", url.Values{
		"name": {"Lakeview"}, "address": {"1 Lake Rd"}, "city": {"Geneva"},
	})
	if err != nil {
		t.Fatalf("POST /hotels: %v", err)
	}
	body, err := io.ReadAll(res.Body)
	res.Body.Close()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("after redirect: %d", res.StatusCode)
	}
	page := string(body)
	if !strings.Contains(page, "Lakeview") || !strings.Contains(page, "Hotel added successfully") {
		t.Fatalf("list page after create:\n%s", page)
	}

	// the banner is gone on reload
	if _, page := getBody(t, c, ts.URL+"/hotels"); strings.Contains(page, "Hotel added successfully") {
		t.Fatal("flash banner survived a second load")
	}

	// hotel detail and empty room collection
	if code, page := getBody(t, c, ts.URL+"/hotels/1"); code != http.StatusOK || !strings.Contains(page, "1 Lake Rd") {
		t.Fatalf("hotel detail: %d", code)
	}
	if code, page := getBody(t, c, ts.URL+"/hotels/1/rooms"); code != http.StatusOK || !strings.Contains(page, "No rooms yet.") {
		t.Fatalf("room list: %d", code)
	}

	// duplicate hotel name re-renders the form
	res, err = c.PostForm(ts.URL+"/hotels", url.Values{"name": {"Lakeview"}, "address": {"2 Hill Rd"}})
	if err != nil {
		t.Fatalf("POST dup: %v", err)
	}
	body, _ = io.ReadAll(res.Body)
	res.Body.Close()
	if res.StatusCode != http.StatusConflict || !strings.Contains(string(body), "Enter unique data.") {
		t.Fatalf("duplicate create: %d", res.StatusCode)
	}

	// add a room through the form, then check the scoped views
	res, err = c.PostForm(ts.URL+"/rooms", url.Values{
		"hotel_id": {"1"}, "number": {"101"}, "type": {"double"}, "price": {"120.50"},
	})
	if err != nil {
		t.Fatalf("POST /rooms: %v", err)
	}
	io.Copy(io.Discard, res.Body)
	res.Body.Close()

	if code, page := getBody(t, c, ts.URL+"/hotels/1/rooms/1"); code != http.StatusOK || !strings.Contains(page, "Room 101") {
		t.Fatalf("scoped room detail: %d", code)
	}

	// a second hotel cannot claim the first hotel's room
	res, err = c.PostForm(ts.URL+"/hotels", url.Values{"name": {"Hillside"}, "address": {"2 Hill Rd"}})
	if err != nil {
		t.Fatalf("POST second hotel: %v", err)
	}
	io.Copy(io.Discard, res.Body)
	res.Body.Close()
	if code, page := getBody(t, c, ts.URL+"/hotels/2/rooms/1"); code != http.StatusNotFound || !strings.Contains(page, "does not belong") {
		t.Fatalf("ownership check: %d", code)
	}

	// delete cascades and repeats harmlessly
	if code, _ := getBody(t, c, ts.URL+"/hotels/delete/1"); code != http.StatusOK {
		t.Fatalf("delete redirect chain: %d", code)
	}
	if code, _ := getBody(t, c, ts.URL+"/hotels/1"); code != http.StatusNotFound {
		t.Fatalf("hotel survived delete: %d", code)
	}
	if code, _ := getBody(t, c, ts.URL+"/rooms/1"); code != http.StatusNotFound {
		t.Fatalf("room survived cascade: %d", code)
	}
	if code, _ := getBody(t, c, ts.URL+"/hotels/delete/1"); code != http.StatusOK {
		t.Fatalf("repeat delete: %d", code)
	}
}
