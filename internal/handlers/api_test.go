package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/herdsourcing/backend/internal/auth"
	"github.com/herdsourcing/backend/internal/middleware"
	"github.com/herdsourcing/backend/internal/service"
	"github.com/herdsourcing/backend/internal/store"
)

// newTestRouter wires the full API the way cmd/server does, minus rate
// limiting.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	users := store.NewUserDirectory("ucdavis.edu")
	projects := store.NewProjectStore()
	conversations := store.NewConversationStore(users)
	blocks := store.NewBlockList()

	logger := zap.NewNop()
	jwtService := auth.NewJWTService("test-secret", 24)
	messaging := service.NewMessagingService(conversations, blocks, logger)

	authHandler := NewAuthHandler(users, jwtService)
	convHandler := NewConversationHandler(conversations, blocks, messaging, logger)
	msgHandler := NewMessageHandler(messaging)
	blockHandler := NewBlockHandler(blocks)
	projectHandler := NewProjectHandler(projects, users)
	activityHandler := NewActivityHandler(projects, conversations)

	router := gin.New()
	router.POST("/auth/register", authHandler.Register)
	router.POST("/auth/login", authHandler.Login)

	api := router.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(jwtService))
	{
		api.GET("/me", authHandler.GetMe)
		api.GET("/projects", projectHandler.GetProjects)
		api.POST("/projects", projectHandler.CreateProject)
		api.GET("/conversations", convHandler.GetConversations)
		api.POST("/conversations", convHandler.CreateConversation)
		api.DELETE("/conversations/:id", convHandler.DeleteConversation)
		api.POST("/messages", msgHandler.SendMessage)
		api.POST("/messages/join-request", msgHandler.SendJoinRequest)
		api.POST("/blocks/:user_id", blockHandler.BlockUser)
		api.GET("/activity", activityHandler.GetActivity)
	}
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func register(t *testing.T, router *gin.Engine, email, name string) (token string, userID string) {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/auth/register", "", gin.H{
		"email":        email,
		"password":     "password123",
		"display_name": name,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp struct {
		Token string `json:"token"`
		User  struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Token, resp.User.ID
}

func TestAPI_RequiresAuth(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/me", "", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAPI_RegisterLoginMe(t *testing.T) {
	req := require.New(t)
	router := newTestRouter(t)

	token, _ := register(t, router, "achen@ucdavis.edu", "Alex Chen")

	rec := doJSON(t, router, http.MethodGet, "/api/v1/me", token, nil)
	req.Equal(http.StatusOK, rec.Code)
	req.Contains(rec.Body.String(), "achen@ucdavis.edu")

	// Duplicate registration is rejected.
	rec = doJSON(t, router, http.MethodPost, "/auth/register", "", gin.H{
		"email":        "achen@ucdavis.edu",
		"password":     "password123",
		"display_name": "Someone Else",
	})
	req.Equal(http.StatusConflict, rec.Code)

	// Wrong password fails.
	rec = doJSON(t, router, http.MethodPost, "/auth/login", "", gin.H{
		"email":    "achen@ucdavis.edu",
		"password": "wrong-password",
	})
	req.Equal(http.StatusUnauthorized, rec.Code)
}

func TestAPI_ConversationAndMessageFlow(t *testing.T) {
	req := require.New(t)
	router := newTestRouter(t)

	token, _ := register(t, router, "achen@ucdavis.edu", "Alex Chen")

	rec := doJSON(t, router, http.MethodPost, "/api/v1/conversations", token, gin.H{
		"participants": []string{"jlee@ucdavis.edu"},
	})
	req.Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var conv struct {
		ID string `json:"id"`
	}
	req.NoError(json.Unmarshal(rec.Body.Bytes(), &conv))

	rec = doJSON(t, router, http.MethodPost, "/api/v1/messages", token, gin.H{
		"conversation_id": conv.ID,
		"content":         "Hi! I'm interested in the Frontend Developer role.",
	})
	req.Equal(http.StatusCreated, rec.Code, rec.Body.String())

	// Empty participant list is a bad request.
	rec = doJSON(t, router, http.MethodPost, "/api/v1/conversations", token, gin.H{
		"participants": []string{},
	})
	req.Equal(http.StatusBadRequest, rec.Code)

	// Strict deletion: second delete of the same conversation is a 404.
	rec = doJSON(t, router, http.MethodDelete, "/api/v1/conversations/"+conv.ID, token, nil)
	req.Equal(http.StatusOK, rec.Code)
	rec = doJSON(t, router, http.MethodDelete, "/api/v1/conversations/"+conv.ID, token, nil)
	req.Equal(http.StatusNotFound, rec.Code)
}

func TestAPI_BlockHidesConversation(t *testing.T) {
	req := require.New(t)
	router := newTestRouter(t)

	aliceToken, _ := register(t, router, "achen@ucdavis.edu", "Alex Chen")
	_, bobID := register(t, router, "jlee@ucdavis.edu", "Jordan Lee")

	rec := doJSON(t, router, http.MethodPost, "/api/v1/conversations", aliceToken, gin.H{
		"participants": []string{"jlee@ucdavis.edu"},
	})
	req.Equal(http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/conversations", aliceToken, nil)
	req.Equal(http.StatusOK, rec.Code)
	req.Contains(rec.Body.String(), "jlee@ucdavis.edu")

	rec = doJSON(t, router, http.MethodPost, "/api/v1/blocks/"+bobID, aliceToken, nil)
	req.Equal(http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/conversations", aliceToken, nil)
	req.Equal(http.StatusOK, rec.Code)
	req.Equal("[]", rec.Body.String())
}

func TestAPI_ActivityFeed(t *testing.T) {
	req := require.New(t)
	router := newTestRouter(t)

	token, _ := register(t, router, "jlee@ucdavis.edu", "Jordan Lee")

	rec := doJSON(t, router, http.MethodPost, "/api/v1/projects", token, gin.H{
		"title":       "Campus Sustainability App",
		"description": "Track and gamify sustainability efforts.",
		"status":      "open",
	})
	req.Equal(http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodGet, "/api/v1/activity", token, nil)
	req.Equal(http.StatusOK, rec.Code)
	req.Contains(rec.Body.String(), `Jordan Lee created \"Campus Sustainability App\"`)
	req.Contains(rec.Body.String(), "activity-project-")
}
