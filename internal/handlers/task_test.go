package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"github.com/tasky-app/tasky-api/internal/models"
)

// TaskHandlerTestSuite drives the task lifecycle through the real router.
type TaskHandlerTestSuite struct {
	suite.Suite
	env   *testEnv
	owner *models.User
	token string
}

// SetupTest runs before each test
func (suite *TaskHandlerTestSuite) SetupTest() {
	suite.env = newTestEnv(suite.T())
	suite.owner, suite.token = suite.env.registerUser(suite.T(), "owner")
}

func (suite *TaskHandlerTestSuite) createTask(title string) uint64 {
	w := doJSON(suite.T(), suite.env, http.MethodPost, "/api/tasks", suite.token, map[string]string{
		"title":       title,
		"description": "description of " + title,
	})
	suite.Require().Equal(http.StatusCreated, w.Code)

	var response struct {
		Task struct {
			ID uint64 `json:"id"`
		} `json:"task"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	return response.Task.ID
}

func (suite *TaskHandlerTestSuite) listTitles(status string) []string {
	w := doJSON(suite.T(), suite.env, http.MethodGet, "/api/tasks?status="+status, suite.token, nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	var response struct {
		Tasks []struct {
			Title       string `json:"title"`
			IsCompleted bool   `json:"isCompleted"`
		} `json:"tasks"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))

	titles := make([]string, len(response.Tasks))
	for i, task := range response.Tasks {
		titles[i] = task.Title
	}
	return titles
}

func (suite *TaskHandlerTestSuite) TestCreateTask() {
	w := doJSON(suite.T(), suite.env, http.MethodPost, "/api/tasks", suite.token, map[string]interface{}{
		"title":       "Write report",
		"description": "Quarterly report",
		"priority":    "URGENT",
	})
	suite.Require().Equal(http.StatusCreated, w.Code)

	var response struct {
		Message string `json:"message"`
		Task    struct {
			Title       string `json:"title"`
			Priority    string `json:"priority"`
			IsCompleted bool   `json:"isCompleted"`
			IsDeleted   bool   `json:"isDeleted"`
			OwnerID     uint64 `json:"ownerId"`
		} `json:"task"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(suite.T(), "Task created successfully", response.Message)
	assert.Equal(suite.T(), "URGENT", response.Task.Priority)
	assert.False(suite.T(), response.Task.IsCompleted)
	assert.False(suite.T(), response.Task.IsDeleted)
	assert.Equal(suite.T(), suite.owner.ID, response.Task.OwnerID)
}

func (suite *TaskHandlerTestSuite) TestCreateTaskValidation() {
	w := doJSON(suite.T(), suite.env, http.MethodPost, "/api/tasks", suite.token, map[string]string{
		"description": "no title",
	})
	suite.Require().Equal(http.StatusBadRequest, w.Code)
}

func (suite *TaskHandlerTestSuite) TestLifecycleEndToEnd() {
	id := suite.createTask("T1")

	// Fresh task sits in the active list
	suite.Equal([]string{"T1"}, suite.listTitles("active"))
	suite.Empty(suite.listTitles("completed"))

	// Complete moves it to the completed list
	w := doJSON(suite.T(), suite.env, http.MethodPatch, fmt.Sprintf("/api/tasks/complete/%d", id), suite.token, nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Empty(suite.listTitles("active"))
	suite.Equal([]string{"T1"}, suite.listTitles("completed"))

	// Soft delete moves it to the trash
	w = doJSON(suite.T(), suite.env, http.MethodDelete, fmt.Sprintf("/api/tasks/%d", id), suite.token, nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Empty(suite.listTitles("completed"))
	suite.Equal([]string{"T1"}, suite.listTitles("deleted"))

	// Restore returns it to the completed list, completion preserved
	w = doJSON(suite.T(), suite.env, http.MethodPatch, fmt.Sprintf("/api/tasks/restore/%d", id), suite.token, nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Empty(suite.listTitles("deleted"))
	suite.Equal([]string{"T1"}, suite.listTitles("completed"))
}

func (suite *TaskHandlerTestSuite) TestGetTask() {
	id := suite.createTask("Readable")

	w := doJSON(suite.T(), suite.env, http.MethodGet, fmt.Sprintf("/api/tasks/%d", id), suite.token, nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "Readable")
}

func (suite *TaskHandlerTestSuite) TestUpdateTask() {
	id := suite.createTask("Before")

	w := doJSON(suite.T(), suite.env, http.MethodPatch, fmt.Sprintf("/api/tasks/%d", id), suite.token, map[string]string{
		"title":       "After",
		"description": "updated",
		"priority":    "VERY_URGENT",
	})
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "After")
	suite.Contains(w.Body.String(), "VERY_URGENT")
}

func (suite *TaskHandlerTestSuite) TestIncompleteTask() {
	id := suite.createTask("Toggle")

	w := doJSON(suite.T(), suite.env, http.MethodPatch, fmt.Sprintf("/api/tasks/complete/%d", id), suite.token, nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	w = doJSON(suite.T(), suite.env, http.MethodPatch, fmt.Sprintf("/api/tasks/incomplete/%d", id), suite.token, nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Equal([]string{"Toggle"}, suite.listTitles("active"))
}

func (suite *TaskHandlerTestSuite) TestRestoreActiveTaskReturns404() {
	id := suite.createTask("Active")

	w := doJSON(suite.T(), suite.env, http.MethodPatch, fmt.Sprintf("/api/tasks/restore/%d", id), suite.token, nil)
	suite.Require().Equal(http.StatusNotFound, w.Code)
	suite.Contains(w.Body.String(), "Task not found in trash")
}

func (suite *TaskHandlerTestSuite) TestPurgeTask() {
	id := suite.createTask("Gone forever")

	w := doJSON(suite.T(), suite.env, http.MethodDelete, fmt.Sprintf("/api/tasks/purge/%d", id), suite.token, nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	// Erased from every view, including the trash
	suite.Empty(suite.listTitles("active"))
	suite.Empty(suite.listTitles("deleted"))

	w = doJSON(suite.T(), suite.env, http.MethodDelete, fmt.Sprintf("/api/tasks/purge/%d", id), suite.token, nil)
	suite.Require().Equal(http.StatusNotFound, w.Code)
}

func (suite *TaskHandlerTestSuite) TestPurgeTrashedTask() {
	id := suite.createTask("Trash then purge")

	w := doJSON(suite.T(), suite.env, http.MethodDelete, fmt.Sprintf("/api/tasks/%d", id), suite.token, nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	w = doJSON(suite.T(), suite.env, http.MethodDelete, fmt.Sprintf("/api/tasks/purge/%d", id), suite.token, nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Empty(suite.listTitles("deleted"))
}

func (suite *TaskHandlerTestSuite) TestForeignTasksAreInvisible() {
	id := suite.createTask("Private")

	_, strangerToken := suite.env.registerUser(suite.T(), "stranger")

	for _, attempt := range []struct {
		method string
		url    string
		body   interface{}
	}{
		{http.MethodGet, fmt.Sprintf("/api/tasks/%d", id), nil},
		{http.MethodPatch, fmt.Sprintf("/api/tasks/%d", id), map[string]string{"title": "x", "description": "y"}},
		{http.MethodPatch, fmt.Sprintf("/api/tasks/complete/%d", id), nil},
		{http.MethodPatch, fmt.Sprintf("/api/tasks/incomplete/%d", id), nil},
		{http.MethodDelete, fmt.Sprintf("/api/tasks/%d", id), nil},
		{http.MethodDelete, fmt.Sprintf("/api/tasks/purge/%d", id), nil},
	} {
		w := doJSON(suite.T(), suite.env, attempt.method, attempt.url, strangerToken, attempt.body)
		suite.Equal(http.StatusNotFound, w.Code, "%s %s must not leak existence", attempt.method, attempt.url)
	}

	// Owner still sees the task untouched
	suite.Equal([]string{"Private"}, suite.listTitles("active"))
}

func (suite *TaskHandlerTestSuite) TestListRejectsUnknownStatus() {
	w := doJSON(suite.T(), suite.env, http.MethodGet, "/api/tasks?status=archived", suite.token, nil)
	suite.Require().Equal(http.StatusBadRequest, w.Code)
}

func (suite *TaskHandlerTestSuite) TestInvalidTaskID() {
	w := doJSON(suite.T(), suite.env, http.MethodGet, "/api/tasks/banana", suite.token, nil)
	suite.Require().Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "Invalid task ID")
}

func TestTaskHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TaskHandlerTestSuite))
}
