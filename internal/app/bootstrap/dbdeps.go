// internal/app/bootstrap/dbdeps.go
package bootstrap

// DBDeps holds database/back-end dependencies for the app.
// gatehouse keeps no state, so it is empty; WAFFLE's lifecycle still needs
// the type.
type DBDeps struct{}
