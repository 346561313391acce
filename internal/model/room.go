package model

import "strings"

type RoomCode string

const EmptyRoomCode RoomCode = ""

// NormalizeCode brings any caller-supplied code to its canonical uppercase form.
func NormalizeCode(code string) RoomCode {
	return RoomCode(strings.ToUpper(strings.TrimSpace(code)))
}

func (c RoomCode) String() string {
	return string(c)
}

type Member struct {
	UserID     string
	Submission Submission
}

// Room is a detached copy of a room. Members are kept in join order.
type Room struct {
	Code    RoomCode
	Members []Member
}

func (r Room) Size() int {
	return len(r.Members)
}

func (r Room) UserIDs() []string {
	ids := make([]string, 0, len(r.Members))
	for _, m := range r.Members {
		ids = append(ids, m.UserID)
	}
	return ids
}

func (r Room) Submissions() []Submission {
	subs := make([]Submission, 0, len(r.Members))
	for _, m := range r.Members {
		subs = append(subs, m.Submission)
	}
	return subs
}
