package usecase

import (
	"context"

	"github.com/rocketscienceinc/pente-backend/internal/entity"
	"github.com/stretchr/testify/mock"
)

// MockgameRepoDep - testify mock of the game repository.
type MockgameRepoDep struct {
	mock.Mock
}

type MockgameRepoDep_Expecter struct {
	mock *mock.Mock
}

func NewMockgameRepoDep(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockgameRepoDep {
	m := &MockgameRepoDep{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (_m *MockgameRepoDep) EXPECT() *MockgameRepoDep_Expecter {
	return &MockgameRepoDep_Expecter{mock: &_m.Mock}
}

func (_m *MockgameRepoDep) CreateOrUpdate(ctx context.Context, game *entity.Game) error {
	ret := _m.Called(ctx, game)

	if fn, ok := ret.Get(0).(func(context.Context, *entity.Game) error); ok {
		return fn(ctx, game)
	}

	return ret.Error(0)
}

type MockgameRepoDep_CreateOrUpdate_Call struct {
	*mock.Call
}

func (_e *MockgameRepoDep_Expecter) CreateOrUpdate(ctx interface{}, game interface{}) *MockgameRepoDep_CreateOrUpdate_Call {
	return &MockgameRepoDep_CreateOrUpdate_Call{Call: _e.mock.On("CreateOrUpdate", ctx, game)}
}

func (_c *MockgameRepoDep_CreateOrUpdate_Call) Run(run func(ctx context.Context, game *entity.Game)) *MockgameRepoDep_CreateOrUpdate_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.Game))
	})
	return _c
}

func (_c *MockgameRepoDep_CreateOrUpdate_Call) Return(err error) *MockgameRepoDep_CreateOrUpdate_Call {
	_c.Call.Return(err)
	return _c
}

func (_c *MockgameRepoDep_CreateOrUpdate_Call) RunAndReturn(run func(context.Context, *entity.Game) error) *MockgameRepoDep_CreateOrUpdate_Call {
	_c.Call.Return(run)
	return _c
}

func (_m *MockgameRepoDep) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	ret := _m.Called(ctx, id)

	if fn, ok := ret.Get(0).(func(context.Context, string) (*entity.Game, error)); ok {
		return fn(ctx, id)
	}

	var game *entity.Game
	if fn, ok := ret.Get(0).(func(context.Context, string) *entity.Game); ok {
		game = fn(ctx, id)
	} else if ret.Get(0) != nil {
		game = ret.Get(0).(*entity.Game)
	}

	return game, ret.Error(1)
}

type MockgameRepoDep_GetByID_Call struct {
	*mock.Call
}

func (_e *MockgameRepoDep_Expecter) GetByID(ctx interface{}, id interface{}) *MockgameRepoDep_GetByID_Call {
	return &MockgameRepoDep_GetByID_Call{Call: _e.mock.On("GetByID", ctx, id)}
}

func (_c *MockgameRepoDep_GetByID_Call) Run(run func(ctx context.Context, id string)) *MockgameRepoDep_GetByID_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockgameRepoDep_GetByID_Call) Return(game *entity.Game, err error) *MockgameRepoDep_GetByID_Call {
	_c.Call.Return(game, err)
	return _c
}

func (_c *MockgameRepoDep_GetByID_Call) RunAndReturn(run func(context.Context, string) (*entity.Game, error)) *MockgameRepoDep_GetByID_Call {
	_c.Call.Return(run)
	return _c
}

func (_m *MockgameRepoDep) DeleteByID(ctx context.Context, id string) error {
	ret := _m.Called(ctx, id)

	if fn, ok := ret.Get(0).(func(context.Context, string) error); ok {
		return fn(ctx, id)
	}

	return ret.Error(0)
}

type MockgameRepoDep_DeleteByID_Call struct {
	*mock.Call
}

func (_e *MockgameRepoDep_Expecter) DeleteByID(ctx interface{}, id interface{}) *MockgameRepoDep_DeleteByID_Call {
	return &MockgameRepoDep_DeleteByID_Call{Call: _e.mock.On("DeleteByID", ctx, id)}
}

func (_c *MockgameRepoDep_DeleteByID_Call) Run(run func(ctx context.Context, id string)) *MockgameRepoDep_DeleteByID_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockgameRepoDep_DeleteByID_Call) Return(err error) *MockgameRepoDep_DeleteByID_Call {
	_c.Call.Return(err)
	return _c
}

func (_c *MockgameRepoDep_DeleteByID_Call) RunAndReturn(run func(context.Context, string) error) *MockgameRepoDep_DeleteByID_Call {
	_c.Call.Return(run)
	return _c
}

func (_m *MockgameRepoDep) Update(ctx context.Context, id string, fn func(*entity.Game) error) (*entity.Game, error) {
	ret := _m.Called(ctx, id, fn)

	if rf, ok := ret.Get(0).(func(context.Context, string, func(*entity.Game) error) (*entity.Game, error)); ok {
		return rf(ctx, id, fn)
	}

	var game *entity.Game
	if ret.Get(0) != nil {
		game = ret.Get(0).(*entity.Game)
	}

	return game, ret.Error(1)
}

type MockgameRepoDep_Update_Call struct {
	*mock.Call
}

func (_e *MockgameRepoDep_Expecter) Update(ctx interface{}, id interface{}, fn interface{}) *MockgameRepoDep_Update_Call {
	return &MockgameRepoDep_Update_Call{Call: _e.mock.On("Update", ctx, id, fn)}
}

func (_c *MockgameRepoDep_Update_Call) Run(run func(ctx context.Context, id string, fn func(*entity.Game) error)) *MockgameRepoDep_Update_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(func(*entity.Game) error))
	})
	return _c
}

func (_c *MockgameRepoDep_Update_Call) Return(game *entity.Game, err error) *MockgameRepoDep_Update_Call {
	_c.Call.Return(game, err)
	return _c
}

func (_c *MockgameRepoDep_Update_Call) RunAndReturn(run func(context.Context, string, func(*entity.Game) error) (*entity.Game, error)) *MockgameRepoDep_Update_Call {
	_c.Call.Return(run)
	return _c
}
