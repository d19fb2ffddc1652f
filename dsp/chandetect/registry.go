package chandetect

// Registry collects the channel candidates of one segmentation scan and
// merges candidates whose center falls inside an existing channel.
type Registry struct {
	channels []Channel
}

// NewRegistry returns an empty registry with room for capacity channels.
func NewRegistry(capacity int) *Registry {
	return &Registry{channels: make([]Channel, 0, max(capacity, 1))}
}

// Submit adds a candidate. If an existing channel contains center, that
// channel's bandwidth grows to max(existing, bandwidth) and its center is
// kept. Otherwise a new channel is appended.
func (r *Registry) Submit(center, bandwidth float64) {
	for i := range r.channels {
		ch := &r.channels[i]
		if ch.Contains(center) {
			ch.Bandwidth = max(ch.Bandwidth, bandwidth)
			return
		}
	}
	r.channels = append(r.channels, Channel{Frequency: center, Bandwidth: bandwidth})
}

// Len returns the number of channels.
func (r *Registry) Len() int { return len(r.channels) }

// Channels returns a copy of the current channels.
func (r *Registry) Channels() []Channel {
	return r.AppendTo(make([]Channel, 0, len(r.channels)))
}

// AppendTo appends the current channels to dst.
func (r *Registry) AppendTo(dst []Channel) []Channel {
	return append(dst, r.channels...)
}

// View returns the registry's backing slice. It is only valid until the next
// Submit or Reset and must not be modified.
func (r *Registry) View() []Channel { return r.channels }

// Reset removes all channels, keeping the allocated capacity.
func (r *Registry) Reset() { r.channels = r.channels[:0] }
