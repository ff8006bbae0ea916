package game

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/spacehole-rogue/spacegame/internal/render"
)

// Station service amounts.
const (
	RefuelAmount = 30
	RepairAmount = 3
)

// Station panel layout. The panel covers the screen width, 20px from the top.
const (
	panelWidth  = 160
	panelHeight = 48
	panelTop    = 20
	panelZ      = 90

	panelLineHeight = 12
)

// StationSession is the state of one docking.
type StationSession struct {
	Offers   []Offer
	Selected int
	Panel    ecs.Entity

	board *render.Image
	scope *scope
}

// Lines returns the panel text, top to bottom.
func (st *StationSession) Lines(credits int) []string {
	offer := st.Offer()
	return []string{
		tr("Station Services"),
		offer.Name,
		tr("Cost %d cr", offer.Cost),
		tr("Credits %d", credits),
	}
}

// Offer returns the selected offer.
func (st *StationSession) Offer() Offer {
	return st.Offers[st.Selected]
}

func (s *Session) setupStation() {
	st := &StationSession{
		Offers: s.offers,
		scope:  newScope(s.eng, KindStationText),
	}
	s.station = st
	s.eng.SetBackground(render.ColorBlue)

	st.board = render.NewImage(panelWidth, panelHeight)
	st.Panel = st.scope.spawn(st.board, KindStationText)
	s.eng.SetPosition(st.Panel, panelWidth/2, panelTop+panelHeight/2)
	s.eng.SetZ(st.Panel, panelZ)
	s.log.Info("docked", "system", s.ActiveSystem().Index+1, "credits", s.player.Credits)
	s.refreshStation()
}

func (s *Session) pressStation(b Button) Action {
	st := s.station
	switch b {
	case ButtonUp:
		st.Selected = (st.Selected + len(st.Offers) - 1) % len(st.Offers)
		s.refreshStation()
	case ButtonDown:
		st.Selected = (st.Selected + 1) % len(st.Offers)
		s.refreshStation()
	case ButtonA:
		s.buy()
	case ButtonB:
		return ActionMap
	}
	return ActionNone
}

// buy purchases the selected offer. A player who cannot afford it is told
// the price and nothing changes.
func (s *Session) buy() {
	offer := s.station.Offer()
	if !s.player.Spend(offer.Cost) {
		s.setHUD(tr("Need %d credits", offer.Cost))
		return
	}

	var msg string
	switch offer.Effect {
	case EffectRefuel:
		s.player.Refuel(RefuelAmount)
		msg = tr("Refueled +%d", RefuelAmount)
	case EffectRepair:
		s.player.Repair(RepairAmount)
		msg = tr("Hull repaired")
	case EffectWeapon:
		s.player.Weapon++
		msg = tr("Weapon upgraded")
	}
	s.log.Info("purchase", "offer", offer.Name, "cost", offer.Cost, "credits", s.player.Credits)
	s.comms.Add(msg, MsgInfo)
	s.refreshStation()
	s.setHUD(msg)
}

// refreshStation redraws the panel for the selected offer.
func (s *Session) refreshStation() {
	st := s.station
	st.board.Fill(render.ColorTransparent)
	for i, line := range st.Lines(s.player.Credits) {
		st.board.Print(line, 2, 2+i*panelLineHeight, render.ColorWhite)
	}
	s.setHUD(tr("Use up/down to cycle, A to buy, B to depart"))
}
