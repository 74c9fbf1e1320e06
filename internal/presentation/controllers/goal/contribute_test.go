package goal

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trackify/trackify-backend/internal/domain/models"
	presentationProtocols "github.com/trackify/trackify-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type findGoalByIdStub struct {
	goal *models.Goal
	err  error
}

func (s *findGoalByIdStub) Find(id primitive.ObjectID) (*models.Goal, error) {
	return s.goal, s.err
}

type updateGoalSpy struct {
	received *models.Goal
}

func (s *updateGoalSpy) Update(id primitive.ObjectID, goal *models.Goal) (*models.Goal, error) {
	s.received = goal
	return goal, nil
}

func contributeRequest(t *testing.T, goalId primitive.ObjectID, userId primitive.ObjectID, body string) presentationProtocols.HttpRequest {
	t.Helper()

	req := httptest.NewRequest("PUT", "/goals/"+goalId.Hex()+"/contribute", strings.NewReader(body))
	req.SetPathValue("id", goalId.Hex())
	req.Header.Set("UserId", userId.Hex())

	return presentationProtocols.HttpRequest{
		Body:   io.NopCloser(strings.NewReader(body)),
		Header: req.Header,
		Req:    req,
	}
}

func TestContributeToGoal(t *testing.T) {
	userId := primitive.NewObjectID()
	goal := &models.Goal{
		Id:            primitive.NewObjectID(),
		UserId:        userId,
		Name:          "New car",
		TargetAmount:  5000,
		CurrentAmount: 4000,
		Deadline:      time.Now().AddDate(0, 6, 0),
	}
	updates := &updateGoalSpy{}
	sut := NewContributeToGoalController(&findGoalByIdStub{goal: goal}, updates)

	response := sut.Handle(contributeRequest(t, goal.Id, userId, `{"amount":1000}`))

	assert.Equal(t, 200, response.StatusCode)
	require.NotNil(t, updates.received)
	assert.InDelta(t, 5000, updates.received.CurrentAmount, 1e-9)
	assert.True(t, updates.received.Completed, "crossing the target marks the goal completed")
	assert.NotNil(t, updates.received.CompletedAt)

	var returned models.Goal
	require.NoError(t, json.NewDecoder(response.Body).Decode(&returned))
	assert.InDelta(t, 5000, returned.CurrentAmount, 1e-9)
}

func TestContributeToGoalRejectsNonPositiveAmount(t *testing.T) {
	userId := primitive.NewObjectID()
	goal := &models.Goal{
		Id:            primitive.NewObjectID(),
		UserId:        userId,
		TargetAmount:  5000,
		CurrentAmount: 4000,
	}
	updates := &updateGoalSpy{}
	sut := NewContributeToGoalController(&findGoalByIdStub{goal: goal}, updates)

	response := sut.Handle(contributeRequest(t, goal.Id, userId, `{"amount":-50}`))

	assert.Equal(t, 400, response.StatusCode)
	assert.Nil(t, updates.received, "a rejected contribution must not hit the store")
}

func TestContributeToGoalUnknownId(t *testing.T) {
	userId := primitive.NewObjectID()
	sut := NewContributeToGoalController(&findGoalByIdStub{}, &updateGoalSpy{})

	response := sut.Handle(contributeRequest(t, primitive.NewObjectID(), userId, `{"amount":50}`))

	assert.Equal(t, 404, response.StatusCode)
}

func TestContributeToGoalNotOwner(t *testing.T) {
	goal := &models.Goal{
		Id:            primitive.NewObjectID(),
		UserId:        primitive.NewObjectID(),
		TargetAmount:  5000,
		CurrentAmount: 4000,
	}
	sut := NewContributeToGoalController(&findGoalByIdStub{goal: goal}, &updateGoalSpy{})

	response := sut.Handle(contributeRequest(t, goal.Id, primitive.NewObjectID(), `{"amount":50}`))

	assert.Equal(t, 401, response.StatusCode)
}
