package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	ideav1 "github.com/gh-aakash/BillionBrains/rpc/idea/v1"
	identityv1 "github.com/gh-aakash/BillionBrains/rpc/identity/v1"
	"github.com/gh-aakash/BillionBrains/services/api-gateway/internal/clients"
)

type fakeIdentityClient struct {
	registerErr error
}

func (f *fakeIdentityClient) Register(_ context.Context, in *identityv1.RegisterRequest, _ ...grpc.CallOption) (*identityv1.User, error) {
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	return &identityv1.User{Id: "u-1", Username: in.Username, FullName: in.FullName}, nil
}

func (f *fakeIdentityClient) Login(context.Context, *identityv1.LoginRequest, ...grpc.CallOption) (*identityv1.LoginResponse, error) {
	return nil, status.Error(codes.Unimplemented, "not wired in tests")
}

func (f *fakeIdentityClient) GetUser(context.Context, *identityv1.GetUserRequest, ...grpc.CallOption) (*identityv1.User, error) {
	return nil, status.Error(codes.Unimplemented, "not wired in tests")
}

type fakeIdeaClient struct {
	ideas     []*ideav1.Idea
	createErr error
	listErr   error
}

func (f *fakeIdeaClient) CreateIdea(_ context.Context, in *ideav1.CreateIdeaRequest, _ ...grpc.CallOption) (*ideav1.Idea, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &ideav1.Idea{Id: "i-1", CreatorId: in.CreatorId, Title: in.Title, Status: "open"}, nil
}

func (f *fakeIdeaClient) GetIdea(context.Context, *ideav1.GetIdeaRequest, ...grpc.CallOption) (*ideav1.Idea, error) {
	return nil, status.Error(codes.Unimplemented, "not wired in tests")
}

func (f *fakeIdeaClient) ListIdeas(_ context.Context, _ *ideav1.ListIdeasRequest, _ ...grpc.CallOption) (*ideav1.ListIdeasResponse, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return &ideav1.ListIdeasResponse{Ideas: f.ideas}, nil
}

func newTestRouter(identity identityv1.IdentityServiceClient, idea ideav1.IdeaServiceClient) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewRouter(&clients.Clients{Identity: identity, Idea: idea})
}

func TestHealth(t *testing.T) {
	r := newTestRouter(&fakeIdentityClient{}, &fakeIdeaClient{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestCreateUser(t *testing.T) {
	r := newTestRouter(&fakeIdentityClient{}, &fakeIdeaClient{})

	body := `{"username":"alice@example.com","full_name":"Alice","password":"pw"}`
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":"u-1","username":"alice@example.com"}`, w.Body.String())
}

func TestCreateUserBadJSON(t *testing.T) {
	r := newTestRouter(&fakeIdentityClient{}, &fakeIdeaClient{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader("{not json")))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateUserDownstreamError(t *testing.T) {
	r := newTestRouter(&fakeIdentityClient{registerErr: status.Error(codes.Unavailable, "identity down")}, &fakeIdeaClient{})

	body := `{"username":"alice@example.com","password":"pw"}`
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(body)))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
}

func TestCreateIdea(t *testing.T) {
	r := newTestRouter(&fakeIdentityClient{}, &fakeIdeaClient{})

	body := `{"title":"Cold brew subscriptions","problem":"p","creator_id":"u-1"}`
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/ideas", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":"i-1","title":"Cold brew subscriptions","status":"open"}`, w.Body.String())
}

func TestListIdeas(t *testing.T) {
	idea := &fakeIdeaClient{ideas: []*ideav1.Idea{
		{Id: "i-1", Title: "one", Problem: "p1"},
		{Id: "i-2", Title: "two", Problem: "p2"},
	}}
	r := newTestRouter(&fakeIdentityClient{}, idea)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/ideas", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ideas":[{"id":"i-1","title":"one","problem":"p1"},{"id":"i-2","title":"two","problem":"p2"}]}`, w.Body.String())
}

func TestListIdeasDownstreamError(t *testing.T) {
	r := newTestRouter(&fakeIdentityClient{}, &fakeIdeaClient{listErr: status.Error(codes.Unavailable, "core down")})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/ideas", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
}

func TestListIdeasEmpty(t *testing.T) {
	r := newTestRouter(&fakeIdentityClient{}, &fakeIdeaClient{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/ideas", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ideas":[]}`, w.Body.String())
}
