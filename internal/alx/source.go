package alx

import "github.com/zaynotley/eaxefx-go"

const (
	alDirectFilter        int32 = 0x20005
	alAuxiliarySendFilter int32 = 0x20006
)

func (d *Driver) GenFilter() (eaxefx.FilterHandle, error) {
	var name uint32
	d.syms.alGenFilters(1, &name)
	return eaxefx.FilterHandle(name), nil
}

func (d *Driver) DeleteFilter(h eaxefx.FilterHandle) error {
	name := uint32(h)
	d.syms.alDeleteFilters(1, &name)
	return nil
}

func (d *Driver) Filteri(h eaxefx.FilterHandle, param uint32, value int32) error {
	d.syms.alFilteri(uint32(h), int32(param), value)
	return nil
}

func (d *Driver) Filterf(h eaxefx.FilterHandle, param uint32, value float32) error {
	d.syms.alFilterf(uint32(h), int32(param), value)
	return nil
}

func (d *Driver) SetDirectFilter(sourceName uint32, filter eaxefx.FilterHandle) error {
	d.syms.alSourcei(sourceName, alDirectFilter, int32(filter))
	return nil
}

func (d *Driver) SetAuxSendFilter(sourceName uint32, send int, slot eaxefx.AuxSlotHandle, filter eaxefx.FilterHandle) error {
	d.syms.alSource3i(sourceName, alAuxiliarySendFilter, int32(slot), int32(send), int32(filter))
	return nil
}
