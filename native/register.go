package native

import "github.com/gogpu/vg"

// Name is the name the engine is registered under.
const Name = "native"

// withUtility serves both call surfaces from one value, so vg.NewContext
// picks up the shape helpers without WithUtility.
type withUtility struct {
	*Engine
	*Utility
}

func init() {
	vg.RegisterEngine(Name, func() (vg.Engine, error) {
		e, err := Open()
		if err != nil {
			return nil, err
		}
		if u := e.Utility(); u != nil {
			return withUtility{e, u}, nil
		}
		return e, nil
	})
}
