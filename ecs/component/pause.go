package component

// InfoMessage is a catalog entry shown as a toast or an info modal.
type InfoMessage struct {
	Title string
	Body  string
}

// Pause couples the pause flag with its payload: the run is paused exactly
// when an info message is attached.
type Pause struct {
	info *InfoMessage
}

// Enter pauses with msg. It fails if the run is already paused.
func (p *Pause) Enter(msg InfoMessage) bool {
	if p.info != nil {
		return false
	}
	p.info = &msg
	return true
}

// Clear resumes and reports whether the run was paused.
func (p *Pause) Clear() bool {
	if p.info == nil {
		return false
	}
	p.info = nil
	return true
}

func (p *Pause) Paused() bool {
	return p.info != nil
}

func (p *Pause) Info() (InfoMessage, bool) {
	if p.info == nil {
		return InfoMessage{}, false
	}
	return *p.info, true
}
