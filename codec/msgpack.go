package codec

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"

	"github.com/pthm/icondata"
)

// MarshalMsgpack encodes icon as a MessagePack selector.
func MarshalMsgpack(icon icondata.Icon) ([]byte, error) {
	return msgpack.Marshal(Value{Icon: icon})
}

// UnmarshalMsgpack decodes a MessagePack selector.
func UnmarshalMsgpack(b []byte) (icondata.Icon, error) {
	var v Value
	if err := msgpack.Unmarshal(b, &v); err != nil {
		return nil, err
	}
	return v.Icon, nil
}

// EncodeMsgpack implements msgpack.CustomEncoder.
func (v Value) EncodeMsgpack(enc *msgpack.Encoder) error {
	if v.Icon == nil {
		return enc.EncodeNil()
	}
	p, err := payload(v.Icon)
	if err != nil {
		return err
	}

	if err := enc.EncodeMapLen(1); err != nil {
		return err
	}
	if err := enc.EncodeString(v.Icon.Set().String()); err != nil {
		return err
	}
	return enc.Encode(p)
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (v *Value) DecodeMsgpack(dec *msgpack.Decoder) error {
	code, err := dec.PeekCode()
	if err != nil {
		return err
	}
	if code == msgpcode.Nil {
		v.Icon = nil
		return dec.DecodeNil()
	}

	n, err := dec.DecodeMapLen()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}
	if n != 1 {
		return fmt.Errorf("%w: want exactly one arm, got %d", ErrInvalidFormat, n)
	}

	tag, err := dec.DecodeString()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}
	set, err := parseTag(tag)
	if err != nil {
		return err
	}

	if set == icondata.Custom {
		icon, err := decodeCustomMsgpack(dec)
		if err != nil {
			return err
		}
		v.Icon = icon
		return nil
	}

	name, err := dec.DecodeString()
	if err != nil {
		return fmt.Errorf("%w: %s payload: %w", ErrInvalidFormat, set, err)
	}
	icon, err := icondata.Parse(set, name)
	if err != nil {
		return err
	}
	v.Icon = icon
	return nil
}

func decodeCustomMsgpack(dec *msgpack.Decoder) (icondata.Icon, error) {
	raw, err := dec.DecodeRaw()
	if err != nil {
		return nil, fmt.Errorf("%w: Custom payload: %w", ErrInvalidFormat, err)
	}

	var fields map[string]any
	if err := msgpack.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("%w: Custom payload: %w", ErrInvalidFormat, err)
	}
	if _, ok := fields[dataKey].(string); !ok {
		return nil, fmt.Errorf("%w: Custom payload has no %s", ErrInvalidFormat, dataKey)
	}

	var c icondata.CustomIcon
	if err := msgpack.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("%w: Custom payload: %w", ErrInvalidFormat, err)
	}
	return c, nil
}
