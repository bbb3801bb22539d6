package usecase

import (
	"context"

	"github.com/rocketscienceinc/pente-backend/internal/entity"
	"github.com/stretchr/testify/mock"
)

// MockplayerRepoDep - testify mock of the player repository.
type MockplayerRepoDep struct {
	mock.Mock
}

type MockplayerRepoDep_Expecter struct {
	mock *mock.Mock
}

func NewMockplayerRepoDep(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockplayerRepoDep {
	m := &MockplayerRepoDep{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (_m *MockplayerRepoDep) EXPECT() *MockplayerRepoDep_Expecter {
	return &MockplayerRepoDep_Expecter{mock: &_m.Mock}
}

func (_m *MockplayerRepoDep) CreateOrUpdate(ctx context.Context, player *entity.Player) error {
	ret := _m.Called(ctx, player)

	if fn, ok := ret.Get(0).(func(context.Context, *entity.Player) error); ok {
		return fn(ctx, player)
	}

	return ret.Error(0)
}

type MockplayerRepoDep_CreateOrUpdate_Call struct {
	*mock.Call
}

func (_e *MockplayerRepoDep_Expecter) CreateOrUpdate(ctx interface{}, player interface{}) *MockplayerRepoDep_CreateOrUpdate_Call {
	return &MockplayerRepoDep_CreateOrUpdate_Call{Call: _e.mock.On("CreateOrUpdate", ctx, player)}
}

func (_c *MockplayerRepoDep_CreateOrUpdate_Call) Run(run func(ctx context.Context, player *entity.Player)) *MockplayerRepoDep_CreateOrUpdate_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.Player))
	})
	return _c
}

func (_c *MockplayerRepoDep_CreateOrUpdate_Call) Return(err error) *MockplayerRepoDep_CreateOrUpdate_Call {
	_c.Call.Return(err)
	return _c
}

func (_c *MockplayerRepoDep_CreateOrUpdate_Call) RunAndReturn(run func(context.Context, *entity.Player) error) *MockplayerRepoDep_CreateOrUpdate_Call {
	_c.Call.Return(run)
	return _c
}

func (_m *MockplayerRepoDep) GetByID(ctx context.Context, id string) (*entity.Player, error) {
	ret := _m.Called(ctx, id)

	if fn, ok := ret.Get(0).(func(context.Context, string) (*entity.Player, error)); ok {
		return fn(ctx, id)
	}

	var player *entity.Player
	if fn, ok := ret.Get(0).(func(context.Context, string) *entity.Player); ok {
		player = fn(ctx, id)
	} else if ret.Get(0) != nil {
		player = ret.Get(0).(*entity.Player)
	}

	return player, ret.Error(1)
}

type MockplayerRepoDep_GetByID_Call struct {
	*mock.Call
}

func (_e *MockplayerRepoDep_Expecter) GetByID(ctx interface{}, id interface{}) *MockplayerRepoDep_GetByID_Call {
	return &MockplayerRepoDep_GetByID_Call{Call: _e.mock.On("GetByID", ctx, id)}
}

func (_c *MockplayerRepoDep_GetByID_Call) Run(run func(ctx context.Context, id string)) *MockplayerRepoDep_GetByID_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockplayerRepoDep_GetByID_Call) Return(player *entity.Player, err error) *MockplayerRepoDep_GetByID_Call {
	_c.Call.Return(player, err)
	return _c
}

func (_c *MockplayerRepoDep_GetByID_Call) RunAndReturn(run func(context.Context, string) (*entity.Player, error)) *MockplayerRepoDep_GetByID_Call {
	_c.Call.Return(run)
	return _c
}
