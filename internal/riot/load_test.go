package riot

import (
	"strings"
	"testing"
)

const sampleMatchJSON = `{
	"metadata": {"matchId": "NA1_100", "participants": ["p1", "p2"]},
	"info": {
		"gameDuration": 1800,
		"participants": [
			{"participantId": 1, "puuid": "p1", "championName": "Zed", "teamId": 100, "teamPosition": "MIDDLE", "win": true, "item0": 3031},
			{"participantId": 2, "puuid": "p2", "championName": "Talon", "teamId": 200, "teamPosition": "MIDDLE", "win": false}
		]
	}
}`

const sampleTimelineJSON = `{
	"metadata": {"matchId": "NA1_100"},
	"info": {
		"frameInterval": 60000,
		"frames": [
			{
				"timestamp": 60000,
				"participantFrames": {
					"1": {"minionsKilled": 8, "totalGold": 650, "xp": 400, "level": 2, "position": {"x": 5000, "y": 5000}}
				},
				"events": [
					{"type": "CHAMPION_KILL", "timestamp": 55000, "killerId": 1, "victimId": 2, "assistingParticipantIds": [3]}
				]
			}
		]
	}
}`

func TestDecodeMatch(t *testing.T) {
	m, err := DecodeMatch(strings.NewReader(sampleMatchJSON))
	if err != nil {
		t.Fatalf("DecodeMatch: %v", err)
	}
	if m.Metadata.MatchID != "NA1_100" {
		t.Errorf("MatchID = %q", m.Metadata.MatchID)
	}
	if m.Info.GameDuration != 1800 {
		t.Errorf("GameDuration = %d", m.Info.GameDuration)
	}
	p := &m.Info.Participants[0]
	if p.ChampionName != "Zed" || p.TeamPosition != "MIDDLE" || !p.Win {
		t.Errorf("participant = %+v", p)
	}
	if items := p.Items(); items[0] != 3031 || items[1] != 0 {
		t.Errorf("items = %v", items)
	}
}

func TestDecodeMatch_NoParticipants(t *testing.T) {
	_, err := DecodeMatch(strings.NewReader(`{"metadata": {}, "info": {}}`))
	if err == nil {
		t.Error("expected error for match without participants")
	}
}

func TestDecodeTimeline(t *testing.T) {
	tl, err := DecodeTimeline(strings.NewReader(sampleTimelineJSON))
	if err != nil {
		t.Fatalf("DecodeTimeline: %v", err)
	}
	if len(tl.Info.Frames) != 1 {
		t.Fatalf("frames = %d", len(tl.Info.Frames))
	}
	frame := tl.Info.Frames[0]
	pf, ok := frame.ParticipantFrames["1"]
	if !ok {
		t.Fatal("missing participant frame for id 1")
	}
	if pf.TotalGold != 650 || pf.Position == nil || pf.Position.X != 5000 {
		t.Errorf("participant frame = %+v", pf)
	}

	ev := &frame.Events[0]
	if ev.Type != EventChampionKill || ev.KillerID != 1 {
		t.Errorf("event = %+v", ev)
	}
	if ev.TimestampMS(frame.Timestamp) != 55000 {
		t.Errorf("event timestamp = %d, want its own 55000", ev.TimestampMS(frame.Timestamp))
	}
	if !ev.HasAssist(3) || ev.HasAssist(4) {
		t.Error("assist resolution incorrect")
	}
}

func TestDecodeTimeline_NoFrames(t *testing.T) {
	_, err := DecodeTimeline(strings.NewReader(`{"metadata": {}, "info": {"frames": []}}`))
	if err == nil {
		t.Error("expected error for timeline without frames")
	}
}
