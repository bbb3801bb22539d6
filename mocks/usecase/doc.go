// Package usecase holds testify mocks of the usecase package's repository
// dependencies. They are kept by hand in mockery's expecter layout, so a
// change to playerRepoDep or gameRepoDep has to be mirrored here.
package usecase
