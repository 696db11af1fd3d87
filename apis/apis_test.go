package apis

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"github.com/supakorn-kn/go-dashboard/env"
	"github.com/supakorn-kn/go-dashboard/errors"
	"github.com/supakorn-kn/go-dashboard/objects"
	"github.com/supakorn-kn/go-dashboard/paginator"
	"github.com/supakorn-kn/go-dashboard/remote"
	"github.com/supakorn-kn/go-dashboard/resources"
	"github.com/supakorn-kn/go-dashboard/screens"
	"github.com/supakorn-kn/go-dashboard/sessions"
)

const apiToken = "remote-api-token"

type viewResponse[T resources.Item] struct {
	Result screens.View[T]  `json:"result"`
	Error  errors.BaseError `json:"error"`
}

// fakeRemote stands in for the dashboard's backend API.
type fakeRemote struct {
	mu            sync.Mutex
	admin         objects.Admin
	password      string
	subscribers   []objects.Subscriber
	employees     []objects.Employee
	teamListCalls int
	uploads       []map[string]string
	authHeaders   []string
}

func newFakeRemote() *fakeRemote {

	fake := &fakeRemote{
		admin: objects.Admin{
			AdminID: gofakeit.UUID(),
			Name:    gofakeit.Name(),
			Number:  gofakeit.Phone(),
			Token:   apiToken,
		},
		password: gofakeit.Password(true, true, true, false, false, 10),
	}

	for i := 0; i < 23; i++ {
		fake.subscribers = append(fake.subscribers, objects.Subscriber{
			SubscriberID: fmt.Sprintf("sub-%02d", i+1),
			Email:        gofakeit.Email(),
		})
	}

	for i := 0; i < 3; i++ {
		fake.employees = append(fake.employees, objects.Employee{
			EmployeeID:  fmt.Sprintf("emp-%d", i+1),
			Name:        gofakeit.Name(),
			Designation: gofakeit.JobTitle(),
		})
	}

	return fake
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (f *fakeRemote) handler() http.Handler {

	mux := http.NewServeMux()

	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {

		var credentials objects.Credentials
		json.NewDecoder(r.Body).Decode(&credentials)

		if credentials.Number != f.admin.Number || credentials.Password != f.password {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Invalid credentials"})
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{"data": f.admin})
	})

	mux.HandleFunc("/newsLetter/all", func(w http.ResponseWriter, r *http.Request) {

		f.mu.Lock()
		f.authHeaders = append(f.authHeaders, r.Header.Get("Authorization"))
		f.mu.Unlock()

		writeJSON(w, http.StatusOK, f.subscribers)
	})

	mux.HandleFunc("/reach/getAllReachUs", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"data": []objects.ReachUs{{ReachUsID: "r1"}, {ReachUsID: "r2"}}})
	})

	mux.HandleFunc("/auth/getAllCounts", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"data": []objects.Count{{Type: "projects", Count: 12}, {Type: "clients", Count: 4}}})
	})

	mux.HandleFunc("/dynamic/team", func(w http.ResponseWriter, r *http.Request) {

		if err := r.ParseMultipartForm(1 << 20); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		upload := map[string]string{}
		for key, values := range r.MultipartForm.Value {
			upload[key] = values[0]
		}

		if files := r.MultipartForm.File["image"]; len(files) > 0 {
			upload["image"] = files[0].Filename
		}

		f.mu.Lock()
		defer f.mu.Unlock()

		f.uploads = append(f.uploads, upload)
		f.employees = append(f.employees, objects.Employee{
			EmployeeID:  gofakeit.UUID(),
			Name:        upload["name"],
			Designation: upload["designation"],
		})

		writeJSON(w, http.StatusCreated, map[string]string{"message": "created"})
	})

	mux.HandleFunc("/dynamic/team/", func(w http.ResponseWriter, r *http.Request) {

		f.mu.Lock()
		defer f.mu.Unlock()

		employeeID := strings.TrimPrefix(r.URL.Path, "/dynamic/team/")
		if employeeID == "" {
			f.teamListCalls++
			writeJSON(w, http.StatusOK, f.employees)
			return
		}

		for i, employee := range f.employees {

			if employee.EmployeeID != employeeID {
				continue
			}

			switch r.Method {
			case http.MethodDelete:
				f.employees = append(f.employees[:i], f.employees[i+1:]...)
				w.WriteHeader(http.StatusOK)
			default:
				writeJSON(w, http.StatusOK, employee)
			}

			return
		}

		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Employee not found"})
	})

	mux.HandleFunc("/dynamic/review/rv1", func(w http.ResponseWriter, r *http.Request) {

		if r.Method == http.MethodGet {
			writeJSON(w, http.StatusOK, objects.Review{ReviewID: "rv1", Rating: 4, UserName: gofakeit.Name()})
			return
		}

		w.WriteHeader(http.StatusOK)
	})

	return mux
}

type APITestSuite struct {
	suite.Suite
	remote *fakeRemote
	server *httptest.Server
	g      *gin.Engine
	token  string
}

func (s *APITestSuite) SetupTest() {

	gin.SetMode(gin.TestMode)

	s.remote = newFakeRemote()
	s.server = httptest.NewServer(s.remote.handler())

	client, err := remote.New(env.RemoteConfig{BaseURL: s.server.URL, Timeout: 5 * time.Second})
	s.Require().NoError(err)

	manager := sessions.NewManager(sessions.NewMemoryStore(), client, time.Hour)

	server, err := NewServer(manager, client, paginator.DefaultPageSize)
	s.Require().NoError(err)

	g := gin.New()
	server.Register(g)

	s.g = g
	s.token = s.login()
}

func (s *APITestSuite) TearDownTest() {
	s.server.Close()
}

func (s *APITestSuite) login() string {

	recorder := s.send(http.MethodPost, "/api/auth/login", objects.Credentials{Number: s.remote.admin.Number, Password: s.remote.password})
	s.Require().Equal(http.StatusOK, recorder.Code)

	var resp struct {
		Result loginResponse `json:"result"`
	}

	s.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), &resp))
	s.Require().NotEmpty(resp.Result.Token)

	return resp.Result.Token
}

func (s *APITestSuite) sendWith(method, path, contentType string, body io.Reader, token string) *httptest.ResponseRecorder {

	recorder := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, body)

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	s.g.ServeHTTP(recorder, req)
	return recorder
}

func (s *APITestSuite) send(method, path string, body any) *httptest.ResponseRecorder {

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewBuffer(b)
	}

	return s.sendWith(method, path, "application/json", reader, s.token)
}

func decode[T any](s *APITestSuite, recorder *httptest.ResponseRecorder) T {

	var resp T
	s.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), &resp))
	return resp
}

func (s *APITestSuite) TestAuth() {

	s.Run("Should throw error when number or password is missing", func() {

		recorder := s.sendWith(http.MethodPost, "/api/auth/login", "application/json", strings.NewReader(`{"number":""}`), "")
		s.Require().Equal(http.StatusBadRequest, recorder.Code)

		resp := decode[CRUDResponse](s, recorder)
		s.True(errors.IsError(resp.Error, errors.CredentialsMissingError.New()))
	})

	s.Run("Should throw error when remote API rejects the login", func() {

		b, _ := json.Marshal(objects.Credentials{Number: s.remote.admin.Number, Password: "wrong"})
		recorder := s.sendWith(http.MethodPost, "/api/auth/login", "application/json", bytes.NewBuffer(b), "")
		s.Require().Equal(http.StatusUnauthorized, recorder.Code)

		resp := decode[CRUDResponse](s, recorder)
		s.True(errors.HasCode(resp.Error, errors.InvalidCredentialsErrorCode))
		s.Contains(resp.Error.Message, "Invalid credentials")
	})

	s.Run("Should set the session cookie on login", func() {

		b, _ := json.Marshal(objects.Credentials{Number: s.remote.admin.Number, Password: s.remote.password})
		recorder := s.sendWith(http.MethodPost, "/api/auth/login", "application/json", bytes.NewBuffer(b), "")
		s.Require().Equal(http.StatusOK, recorder.Code)
		s.Contains(recorder.Header().Get("Set-Cookie"), sessionCookie+"=")
	})

	s.Run("Should return signed-in admin", func() {

		recorder := s.send(http.MethodGet, "/api/auth/me", nil)
		s.Require().Equal(http.StatusOK, recorder.Code)

		resp := decode[struct {
			Result objects.Admin `json:"result"`
		}](s, recorder)
		s.Equal(s.remote.admin.AdminID, resp.Result.AdminID)
	})

	s.Run("Should accept the session cookie instead of a bearer token", func() {

		recorder := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/api/auth/me", nil)
		req.AddCookie(&http.Cookie{Name: sessionCookie, Value: s.token})

		s.g.ServeHTTP(recorder, req)
		s.Require().Equal(http.StatusOK, recorder.Code)
	})

	s.Run("Should throw unauthorized without session", func() {

		recorder := s.sendWith(http.MethodGet, "/api/subscribers", "", nil, "")
		s.Require().Equal(http.StatusUnauthorized, recorder.Code)

		resp := decode[CRUDResponse](s, recorder)
		s.True(errors.IsError(resp.Error, errors.UnauthorizedError.New()))
	})

	s.Run("Should end the session on logout", func() {

		recorder := s.send(http.MethodPost, "/api/auth/logout", nil)
		s.Require().Equal(http.StatusOK, recorder.Code)
		s.Equal(OKResponse, decode[CRUDResponse](s, recorder))

		recorder = s.send(http.MethodGet, "/api/auth/me", nil)
		s.Require().Equal(http.StatusUnauthorized, recorder.Code)
	})
}

func (s *APITestSuite) TestScreen() {

	s.Run("Should render first page with strip", func() {

		recorder := s.send(http.MethodGet, "/api/subscribers", nil)
		s.Require().Equal(http.StatusOK, recorder.Code)

		resp := decode[viewResponse[objects.Subscriber]](s, recorder)
		s.Empty(resp.Error)
		s.Equal(1, resp.Result.CurrentPage)
		s.Equal(3, resp.Result.TotalPages)
		s.Equal(23, resp.Result.TotalItems)
		s.Len(resp.Result.Data, 10)
		s.Equal("sub-01", resp.Result.Data[0].GetID())
		s.Equal([]paginator.PageItem{paginator.Page(1), paginator.Page(2), paginator.Page(3)}, resp.Result.Strip)
	})

	s.Run("Should send the admin API token to remote API", func() {

		s.remote.mu.Lock()
		defer s.remote.mu.Unlock()

		s.Require().NotEmpty(s.remote.authHeaders)
		s.Equal("Bearer "+apiToken, s.remote.authHeaders[0])
	})

	s.Run("Should go to the last page", func() {

		recorder := s.send(http.MethodGet, "/api/subscribers?page=3", nil)
		s.Require().Equal(http.StatusOK, recorder.Code)

		resp := decode[viewResponse[objects.Subscriber]](s, recorder)
		s.Equal(3, resp.Result.CurrentPage)
		s.Len(resp.Result.Data, 3)
		s.Equal("sub-21", resp.Result.Data[0].GetID())
	})

	s.Run("Should not move past the last page", func() {

		recorder := s.send(http.MethodPost, "/api/subscribers/next", nil)
		s.Require().Equal(http.StatusOK, recorder.Code)
		s.Equal(3, decode[viewResponse[objects.Subscriber]](s, recorder).Result.CurrentPage)

		recorder = s.send(http.MethodPost, "/api/subscribers/previous", nil)
		s.Require().Equal(http.StatusOK, recorder.Code)
		s.Equal(2, decode[viewResponse[objects.Subscriber]](s, recorder).Result.CurrentPage)
	})

	s.Run("Should throw error when page is not a positive integer", func() {

		for _, page := range []string{"0", "-2", "two"} {

			recorder := s.send(http.MethodGet, "/api/subscribers?page="+page, nil)
			s.Require().Equal(http.StatusBadRequest, recorder.Code)

			resp := decode[CRUDResponse](s, recorder)
			s.True(errors.IsError(resp.Error, errors.CurrentPageInvalidError.New()))
		}
	})

	s.Run("Should toggle the row menu", func() {

		recorder := s.send(http.MethodPost, "/api/subscribers/menu", menuRequest{ID: "sub-12"})
		s.Require().Equal(http.StatusOK, recorder.Code)
		s.Equal("sub-12", decode[viewResponse[objects.Subscriber]](s, recorder).Result.ActiveMenu)

		recorder = s.send(http.MethodPost, "/api/subscribers/menu", menuRequest{ID: "sub-12"})
		s.Require().Equal(http.StatusOK, recorder.Code)
		s.Empty(decode[viewResponse[objects.Subscriber]](s, recorder).Result.ActiveMenu)
	})
}

func (s *APITestSuite) TestFetchError() {

	s.Run("Should render the screen with the fetch error", func() {

		recorder := s.send(http.MethodGet, "/api/contacts", nil)
		s.Require().Equal(http.StatusOK, recorder.Code)

		resp := decode[viewResponse[objects.Subscriber]](s, recorder)
		s.Equal("contacts endpoint not found (404). Please check the API URL.", resp.Result.Error)
		s.Equal(0, resp.Result.TotalItems)
		s.Empty(resp.Result.Data)
	})

	s.Run("Should throw bad gateway when refresh fails", func() {

		recorder := s.send(http.MethodPost, "/api/contacts/refresh", nil)
		s.Require().Equal(http.StatusBadGateway, recorder.Code)

		resp := decode[CRUDResponse](s, recorder)
		s.True(errors.HasCode(resp.Error, errors.RemoteNotFoundErrorCode))
	})
}

func (s *APITestSuite) employeeForm(fields map[string]string, image string) (string, io.Reader) {

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)

	for key, value := range fields {
		s.Require().NoError(writer.WriteField(key, value))
	}

	if image != "" {
		part, err := writer.CreateFormFile("image", image)
		s.Require().NoError(err)
		part.Write([]byte("jpeg"))
	}

	s.Require().NoError(writer.Close())

	return writer.FormDataContentType(), body
}

func (s *APITestSuite) TestEmployees() {

	recorder := s.send(http.MethodGet, "/api/employees", nil)
	s.Require().Equal(http.StatusOK, recorder.Code)
	s.Require().Equal(3, decode[viewResponse[objects.Employee]](s, recorder).Result.TotalItems)

	name, designation := gofakeit.Name(), gofakeit.JobTitle()

	s.Run("Should throw error when creating without profile image", func() {

		contentType, body := s.employeeForm(map[string]string{"name": name, "designation": designation}, "")
		recorder := s.sendWith(http.MethodPost, "/api/employees", contentType, body, s.token)
		s.Require().Equal(http.StatusBadRequest, recorder.Code)

		resp := decode[CRUDResponse](s, recorder)
		s.True(errors.IsError(resp.Error, errors.InvalidArgumentError.New("Please upload a profile image.")))
	})

	s.Run("Should throw error when designation is missing", func() {

		contentType, body := s.employeeForm(map[string]string{"name": name}, "me.jpg")
		recorder := s.sendWith(http.MethodPost, "/api/employees", contentType, body, s.token)
		s.Require().Equal(http.StatusBadRequest, recorder.Code)
		s.True(errors.HasCode(decode[CRUDResponse](s, recorder).Error, errors.InvalidArgumentCode))
	})

	s.Run("Should upload employee and refetch on next view", func() {

		contentType, body := s.employeeForm(map[string]string{"name": name, "designation": designation}, "me.jpg")
		recorder := s.sendWith(http.MethodPost, "/api/employees", contentType, body, s.token)
		s.Require().Equal(http.StatusCreated, recorder.Code)

		s.remote.mu.Lock()
		s.Require().Len(s.remote.uploads, 1)
		s.Equal(name, s.remote.uploads[0]["name"])
		s.Equal("me.jpg", s.remote.uploads[0]["image"])
		s.remote.mu.Unlock()

		recorder = s.send(http.MethodGet, "/api/employees", nil)
		s.Require().Equal(http.StatusOK, recorder.Code)
		s.Equal(4, decode[viewResponse[objects.Employee]](s, recorder).Result.TotalItems)
		s.Equal(2, s.remote.teamListCalls)
	})

	s.Run("Should read one employee", func() {

		recorder := s.send(http.MethodGet, "/api/employees/emp-2", nil)
		s.Require().Equal(http.StatusOK, recorder.Code)

		resp := decode[struct {
			Result objects.Employee `json:"result"`
		}](s, recorder)
		s.Equal("emp-2", resp.Result.EmployeeID)
	})

	s.Run("Should throw not found for unknown employee", func() {

		recorder := s.send(http.MethodGet, "/api/employees/emp-404", nil)
		s.Require().Equal(http.StatusNotFound, recorder.Code)

		resp := decode[CRUDResponse](s, recorder)
		s.True(errors.IsError(resp.Error, errors.ObjectIDNotFoundError.New("emp-404")))
	})

	s.Run("Should drop deleted row without refetching", func() {

		recorder := s.send(http.MethodDelete, "/api/employees/emp-1", nil)
		s.Require().Equal(http.StatusOK, recorder.Code)

		recorder = s.send(http.MethodGet, "/api/employees", nil)
		s.Require().Equal(http.StatusOK, recorder.Code)

		resp := decode[viewResponse[objects.Employee]](s, recorder)
		s.Equal(3, resp.Result.TotalItems)
		for _, employee := range resp.Result.Data {
			s.NotEqual("emp-1", employee.EmployeeID)
		}

		s.Equal(2, s.remote.teamListCalls)
	})
}

func (s *APITestSuite) TestReviews() {

	s.Run("Should read a review", func() {

		recorder := s.send(http.MethodGet, "/api/reviews/rv1", nil)
		s.Require().Equal(http.StatusOK, recorder.Code)

		resp := decode[struct {
			Result objects.Review `json:"result"`
		}](s, recorder)
		s.Equal(4, resp.Result.Rating)
	})

	s.Run("Should update a review", func() {

		recorder := s.send(http.MethodPut, "/api/reviews/rv1", map[string]any{"rating": 5, "user_name": gofakeit.Name()})
		s.Require().Equal(http.StatusOK, recorder.Code)
		s.Equal(OKResponse, decode[CRUDResponse](s, recorder))
	})

	s.Run("Should throw error when rating is out of range", func() {

		recorder := s.send(http.MethodPut, "/api/reviews/rv1", map[string]any{"rating": 9, "user_name": gofakeit.Name()})
		s.Require().Equal(http.StatusBadRequest, recorder.Code)
		s.True(errors.HasCode(decode[CRUDResponse](s, recorder).Error, errors.InvalidArgumentCode))
	})

	s.Run("Should throw error for operations the API lacks", func() {

		recorder := s.send(http.MethodDelete, "/api/reviews/rv1", nil)
		s.Require().Equal(http.StatusBadRequest, recorder.Code)

		resp := decode[CRUDResponse](s, recorder)
		s.True(errors.IsError(resp.Error, errors.OperationUnsupportedError.New("delete", "reviews")))
	})
}

func (s *APITestSuite) TestCounts() {

	s.Run("Should throw bad gateway when a count source is missing", func() {

		recorder := s.send(http.MethodGet, "/api/counts", nil)
		s.Require().Equal(http.StatusBadGateway, recorder.Code)
	})
}

func TestAPI(t *testing.T) {
	suite.Run(t, new(APITestSuite))
}
