package model

// View is the application-level screen selection
type View string

const (
	ViewHome      View = "home"
	ViewActive    View = "active"    // entering scores for an open session
	ViewReviewing View = "reviewing" // read-only view of an ended session
)

// AppState is the process-wide selection of which session, if any, the
// user is working with. It is owned by the UI layer and stored apart
// from the session collection; at most one session is ever selected for
// score entry.
type AppState struct {
	View      View
	SessionID SessionID // empty when View is home
}

// HomeState returns the initial selection
func HomeState() AppState {
	return AppState{View: ViewHome}
}

// OpenSession selects a session: open sessions become the active one,
// ended sessions are opened for review
func (a AppState) OpenSession(s *Session) AppState {
	if s.Ended() {
		return AppState{View: ViewReviewing, SessionID: s.ID}
	}
	return AppState{View: ViewActive, SessionID: s.ID}
}

// EndActive transitions the active session into review. Any other state
// is returned unchanged.
func (a AppState) EndActive() AppState {
	if a.View != ViewActive {
		return a
	}
	return AppState{View: ViewReviewing, SessionID: a.SessionID}
}

// GoHome clears the selection
func (a AppState) GoHome() AppState {
	return HomeState()
}

// ClearIf drops the selection when it points at the given session
func (a AppState) ClearIf(id SessionID) AppState {
	if a.SessionID == id {
		return HomeState()
	}
	return a
}
