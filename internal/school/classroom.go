package school

// Classroom is a physical room the school can seat a class in.
type Classroom struct {
	id             int
	roomName       string
	size           float64
	capacity       int
	hasFeatureFlag bool
}

// NewClassroom validates every field and returns the room. The feature
// flag marks a room fitted with the presentation system and carries no
// constraint.
func NewClassroom(id int, roomName string, size float64, capacity int, hasFeatureFlag bool) (Classroom, error) {
	if id <= 0 {
		return Classroom{}, invalid("id", "must be positive")
	}
	c := Classroom{id: id, hasFeatureFlag: hasFeatureFlag}
	if err := c.SetRoomName(roomName); err != nil {
		return Classroom{}, err
	}
	if err := c.SetSize(size); err != nil {
		return Classroom{}, err
	}
	if err := c.SetCapacity(capacity); err != nil {
		return Classroom{}, err
	}
	return c, nil
}

func (c Classroom) ID() int              { return c.id }
func (c Classroom) RoomName() string     { return c.roomName }
func (c Classroom) Size() float64        { return c.size }
func (c Classroom) Capacity() int        { return c.capacity }
func (c Classroom) HasFeatureFlag() bool { return c.hasFeatureFlag }

func (c *Classroom) SetHasFeatureFlag(v bool) { c.hasFeatureFlag = v }

func (c *Classroom) SetRoomName(roomName string) error {
	if err := required("roomName", roomName); err != nil {
		return err
	}
	c.roomName = roomName
	return nil
}

func (c *Classroom) SetSize(size float64) error {
	// NaN fails every comparison, so test for the accepted range.
	if !(size > 0) {
		return invalid("size", "must be positive")
	}
	c.size = size
	return nil
}

func (c *Classroom) SetCapacity(capacity int) error {
	if capacity <= 0 {
		return invalid("capacity", "must be positive")
	}
	c.capacity = capacity
	return nil
}
