package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/jrazmi/join/app/join/api"
	"github.com/jrazmi/join/core/repositories/reposet"
	"github.com/jrazmi/join/infrastructure/databases/sqlitedb/dbtest"
	"github.com/jrazmi/join/infrastructure/web"
	"github.com/jrazmi/join/sdk/logger"
	"github.com/jrazmi/join/sdk/telemetry"
	"github.com/jrazmi/join/sdk/validation"
)

type client struct {
	t     *testing.T
	srv   *httptest.Server
	token string
}

func newClient(t *testing.T) *client {
	t.Helper()

	log := logger.NewDiscard()
	h := api.NewHandler(api.Config{
		Build:        "test",
		Log:          log,
		Telemetry:    telemetry.NewTelemetry(),
		APIRoute:     "/api/v1",
		Handler:      web.HandlerOptions{CORSOrigins: []string{"*"}},
		Repositories: reposet.NewSQLite(log, dbtest.New(t)),
	})

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return &client{t: t, srv: srv}
}

func (c *client) do(method, path string, body any) (int, []byte) {
	c.t.Helper()

	var rdr io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			c.t.Fatalf("marshal: %v", err)
		}
		rdr = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.srv.URL+path, rdr)
	if err != nil {
		c.t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Token "+c.token)
	}
	return c.send(req)
}

func (c *client) form(path string, values url.Values) (int, []byte) {
	c.t.Helper()

	req, err := http.NewRequest(http.MethodPost, c.srv.URL+path, strings.NewReader(values.Encode()))
	if err != nil {
		c.t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if c.token != "" {
		req.Header.Set("Authorization", "Token "+c.token)
	}
	return c.send(req)
}

func (c *client) send(req *http.Request) (int, []byte) {
	c.t.Helper()

	resp, err := c.srv.Client().Do(req)
	if err != nil {
		c.t.Fatalf("%s %s: %v", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		c.t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, data
}

func (c *client) decode(data []byte, v any) {
	c.t.Helper()
	if err := json.Unmarshal(data, v); err != nil {
		c.t.Fatalf("decode %s: %v", data, err)
	}
}

// login registers username and stores its token on the client.
func (c *client) login(username string) int64 {
	c.t.Helper()

	status, data := c.do(http.MethodPost, "/api/v1/register/", map[string]string{
		"username": username,
		"email":    username + "@example.com",
		"password": "s3cret",
	})
	if status != http.StatusCreated {
		c.t.Fatalf("register: %d %s", status, data)
	}

	status, data = c.do(http.MethodPost, "/api/v1/login/", map[string]string{"username": username, "password": "s3cret"})
	if status != http.StatusOK {
		c.t.Fatalf("login: %d %s", status, data)
	}

	var got struct {
		Token  string `json:"token"`
		UserID int64  `json:"user_id"`
	}
	c.decode(data, &got)
	c.token = got.Token
	return got.UserID
}

type task struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
	Priority    string `json:"priority"`
	DueDate     string `json:"due_date"`
	State       string `json:"state"`
	Author      int64  `json:"author"`
}

func (c *client) createTask(title string) task {
	c.t.Helper()

	status, data := c.do(http.MethodPost, "/api/v1/tasks/", map[string]string{"title": title, "description": "desc"})
	if status != http.StatusCreated {
		c.t.Fatalf("create task: %d %s", status, data)
	}
	var tk task
	c.decode(data, &tk)
	return tk
}

func TestRegisterAndLogin(t *testing.T) {
	c := newClient(t)

	status, data := c.do(http.MethodPost, "/api/v1/register/", map[string]string{
		"username": "user1", "email": "user1@example.com", "password": "pw",
	})
	if status != http.StatusCreated || string(data) != `{"message":"User created successfully."}` {
		t.Fatalf("register: %d %s", status, data)
	}

	tests := []struct {
		name string
		body map[string]string
		want string
	}{
		{name: "missing password", body: map[string]string{"username": "x", "email": "x@example.com"}, want: `{"error":"All fields are required."}`},
		{name: "username taken", body: map[string]string{"username": "user1", "email": "other@example.com", "password": "pw"}, want: `{"error":"Username already exists."}`},
		{name: "email taken", body: map[string]string{"username": "user2", "email": "user1@example.com", "password": "pw"}, want: `{"error":"Email already exists."}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, data := c.do(http.MethodPost, "/api/v1/register/", tt.body)
			if status != http.StatusBadRequest || string(data) != tt.want {
				t.Fatalf("got %d %s, want 400 %s", status, data, tt.want)
			}
		})
	}

	long := strings.Repeat("p", 80)
	status, data = c.do(http.MethodPost, "/api/v1/register/", map[string]string{
		"username": "longpw", "email": "longpw@example.com", "password": long,
	})
	if status != http.StatusCreated {
		t.Fatalf("register with long password: %d %s", status, data)
	}
	status, data = c.do(http.MethodPost, "/api/v1/login/", map[string]string{"username": "longpw", "password": long})
	if status != http.StatusOK || !strings.Contains(string(data), `"token"`) {
		t.Fatalf("login with long password: %d %s", status, data)
	}
	status, _ = c.do(http.MethodPost, "/api/v1/login/", map[string]string{"username": "longpw", "password": long[:79] + "q"})
	if status != http.StatusBadRequest {
		t.Fatalf("login with near-miss long password: %d", status)
	}

	status, data = c.do(http.MethodPost, "/api/v1/login/", map[string]string{"username": "user1", "password": "wrong"})
	if status != http.StatusBadRequest || string(data) != `{"non_field_errors":["Unable to log in with provided credentials."]}` {
		t.Fatalf("bad login: %d %s", status, data)
	}

	status, data = c.do(http.MethodPost, "/api/v1/login/", map[string]string{})
	if status != http.StatusBadRequest || !strings.Contains(string(data), `"username":["This field is required."]`) {
		t.Fatalf("empty login: %d %s", status, data)
	}

	var first, second struct {
		Token  string `json:"token"`
		UserID int64  `json:"user_id"`
		Email  string `json:"email"`
	}
	_, data = c.form("/api/v1/login/", url.Values{"username": {"user1"}, "password": {"pw"}})
	c.decode(data, &first)
	_, data = c.do(http.MethodPost, "/api/v1/login/", map[string]string{"username": "user1", "password": "pw"})
	c.decode(data, &second)

	if first.Token == "" || first.Token != second.Token {
		t.Fatalf("tokens differ: %q %q", first.Token, second.Token)
	}
	if first.Email != "user1@example.com" {
		t.Fatalf("email = %q", first.Email)
	}
}

func TestGatedRoutes(t *testing.T) {
	c := newClient(t)

	for _, path := range []string{"/api/v1/tasks/", "/api/v1/subtasks/", "/api/v1/contacts/", "/api/v1/users/", "/api/v1/current_user/"} {
		status, data := c.do(http.MethodGet, path, nil)
		if status != http.StatusUnauthorized || string(data) != `{"detail":"Authentication credentials were not provided."}` {
			t.Errorf("GET %s: %d %s", path, status, data)
		}
	}

	c.token = strings.Repeat("a", 40)
	status, data := c.do(http.MethodGet, "/api/v1/tasks/", nil)
	if status != http.StatusUnauthorized || string(data) != `{"detail":"Invalid token."}` {
		t.Fatalf("bad token: %d %s", status, data)
	}

	c.token = ""
	userID := c.login("user1")
	status, data = c.do(http.MethodGet, "/api/v1/current_user/", nil)
	if status != http.StatusOK || string(data) != fmt.Sprintf(`{"id":%d}`, userID) {
		t.Fatalf("current user: %d %s", status, data)
	}

	status, data = c.do(http.MethodGet, "/api/v1/users/", nil)
	if status != http.StatusOK || strings.Contains(string(data), "password") || !strings.Contains(string(data), `"username":"user1"`) {
		t.Fatalf("users: %d %s", status, data)
	}
}

func TestTaskLifecycle(t *testing.T) {
	c := newClient(t)
	userID := c.login("user1")

	tk := c.createTask("Task 1")
	today := validation.FormatDate(validation.Today())
	if tk.Author != userID || tk.Priority != "Low" || tk.State != "To Do" || tk.DueDate != today || tk.CreatedAt != today {
		t.Fatalf("defaults not applied: %+v", tk)
	}

	status, data := c.do(http.MethodPost, "/api/v1/tasks/", map[string]string{"description": "no title"})
	if status != http.StatusBadRequest || string(data) != `{"title":["This field is required."]}` {
		t.Fatalf("missing title: %d %s", status, data)
	}

	status, data = c.do(http.MethodPost, "/api/v1/tasks/", map[string]string{"due_date": "29.02.2024", "state": "Later"})
	var fields map[string][]string
	c.decode(data, &fields)
	if status != http.StatusBadRequest || len(fields) != 4 {
		t.Fatalf("every field error: %d %s", status, data)
	}
	for _, f := range []string{"title", "description", "due_date", "state"} {
		if len(fields[f]) != 1 {
			t.Errorf("%s: got %v", f, fields[f])
		}
	}

	var list []task
	_, data = c.do(http.MethodGet, "/api/v1/tasks/", nil)
	c.decode(data, &list)
	if len(list) != 1 || list[0].ID != tk.ID {
		t.Fatalf("list = %+v", list)
	}

	// Detail routes need no token.
	c.token = ""
	path := fmt.Sprintf("/api/v1/tasks/%d/", tk.ID)

	_, data = c.do(http.MethodGet, path, nil)
	c.decode(data, &list)
	if len(list) != 1 || list[0].Title != "Task 1" {
		t.Fatalf("detail = %s", data)
	}

	status, data = c.do(http.MethodPatch, path, map[string]string{"state": "Done"})
	if status != http.StatusOK {
		t.Fatalf("patch: %d %s", status, data)
	}
	var patched task
	c.decode(data, &patched)
	if patched.State != "Done" || patched.Title != "Task 1" {
		t.Fatalf("patched = %+v", patched)
	}

	status, data = c.do(http.MethodPatch, path, map[string]string{"priority": "Urgent"})
	if status != http.StatusBadRequest || !strings.Contains(string(data), `"priority"`) {
		t.Fatalf("bad priority: %d %s", status, data)
	}

	status, _ = c.do(http.MethodDelete, path, nil)
	if status != http.StatusNoContent {
		t.Fatalf("delete: %d", status)
	}

	status, data = c.do(http.MethodGet, path, nil)
	if status != http.StatusOK || string(data) != `[]` {
		t.Fatalf("detail after delete: %d %s", status, data)
	}

	for _, method := range []string{http.MethodPatch, http.MethodDelete} {
		status, data = c.do(method, path, map[string]string{"title": "x"})
		if status != http.StatusNotFound || len(data) != 0 {
			t.Fatalf("%s missing: %d %s", method, status, data)
		}
	}
}

func TestSubTasks(t *testing.T) {
	c := newClient(t)
	c.login("user1")
	tk := c.createTask("Task 1")

	status, data := c.do(http.MethodGet, fmt.Sprintf("/api/v1/tasks/%d/subtasks/", tk.ID), nil)
	if status != http.StatusNotFound {
		t.Fatalf("empty nested list: %d %s", status, data)
	}

	status, data = c.form("/api/v1/subtasks/", url.Values{"title": {"Sub 1"}, "task": {fmt.Sprint(tk.ID)}, "isDone": {"true"}})
	if status != http.StatusCreated {
		t.Fatalf("create subtask: %d %s", status, data)
	}
	var st struct {
		ID     int64 `json:"id"`
		IsDone bool  `json:"isDone"`
		Task   int64 `json:"task"`
	}
	c.decode(data, &st)
	if !st.IsDone || st.Task != tk.ID {
		t.Fatalf("subtask = %s", data)
	}

	status, data = c.do(http.MethodPost, "/api/v1/subtasks/", map[string]any{"title": "Sub 2", "task": 9999})
	if status != http.StatusBadRequest || string(data) != `{"task":["Invalid pk \"9999\" - object does not exist."]}` {
		t.Fatalf("unknown task: %d %s", status, data)
	}

	status, data = c.do(http.MethodPost, "/api/v1/subtasks/", map[string]any{"title": "Sub 2", "task": "abc"})
	if status != http.StatusBadRequest || string(data) != `{"task":["Incorrect type. Expected pk value, received str."]}` {
		t.Fatalf("bad task: %d %s", status, data)
	}

	status, data = c.do(http.MethodPost, "/api/v1/subtasks/", map[string]any{"task": "abc"})
	want := `{"task":["Incorrect type. Expected pk value, received str."],"title":["This field is required."]}`
	if status != http.StatusBadRequest || string(data) != want {
		t.Fatalf("every field error: %d %s", status, data)
	}

	status, data = c.do(http.MethodGet, fmt.Sprintf("/api/v1/tasks/%d/subtasks", tk.ID), nil)
	if status != http.StatusOK || !strings.Contains(string(data), `"title":"Sub 1"`) {
		t.Fatalf("nested list: %d %s", status, data)
	}

	// Deleting the task removes its subtasks.
	c.do(http.MethodDelete, fmt.Sprintf("/api/v1/tasks/%d", tk.ID), nil)
	status, data = c.do(http.MethodGet, fmt.Sprintf("/api/v1/subtasks/%d", st.ID), nil)
	if status != http.StatusOK || string(data) != `[]` {
		t.Fatalf("subtask after cascade: %d %s", status, data)
	}
}

func TestContacts(t *testing.T) {
	c := newClient(t)
	c.login("user1")

	status, data := c.do(http.MethodPost, "/api/v1/contacts/", map[string]string{"first_name": "First Name", "last_name": "Last Name"})
	if status != http.StatusCreated {
		t.Fatalf("create contact: %d %s", status, data)
	}
	var ct struct {
		ID       int64  `json:"id"`
		FullName string `json:"full_name"`
	}
	c.decode(data, &ct)
	if ct.FullName != "First Name Last Name" {
		t.Fatalf("full_name = %q", ct.FullName)
	}

	status, data = c.do(http.MethodPatch, fmt.Sprintf("/api/v1/contacts/%d", ct.ID), map[string]string{"last_name": "Changed"})
	if status != http.StatusOK {
		t.Fatalf("patch contact: %d %s", status, data)
	}
	c.decode(data, &ct)
	if ct.FullName != "First Name Changed" {
		t.Fatalf("full_name after update = %q", ct.FullName)
	}
}

func TestProbesAndPreflight(t *testing.T) {
	c := newClient(t)

	if status, data := c.do(http.MethodGet, "/readiness", nil); status != http.StatusOK {
		t.Fatalf("readiness: %d %s", status, data)
	}
	if status, data := c.do(http.MethodGet, "/liveness", nil); status != http.StatusOK {
		t.Fatalf("liveness: %d %s", status, data)
	}

	status, _ := c.do(http.MethodOptions, "/api/v1/tasks/", nil)
	if status != http.StatusNoContent {
		t.Fatalf("preflight: %d", status)
	}
	resp, err := c.srv.Client().Get(c.srv.URL + "/api/v1/tasks/")
	if err != nil {
		t.Fatalf("GET tasks: %v", err)
	}
	resp.Body.Close()
	for header, want := range map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "DENY",
		"Referrer-Policy":        "same-origin",
	} {
		if got := resp.Header.Get(header); got != want {
			t.Errorf("%s = %q, want %q", header, got, want)
		}
	}
}
