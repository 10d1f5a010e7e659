package domain

type ClipStyle struct {
	Icon         string
	DefaultColor string
	Label        string
}

type TrackStyle struct {
	Icon          string
	DefaultHeight float64
	Label         string
}

var clipStyles = map[ClipType]ClipStyle{
	ClipTypeVideo:  {Icon: "🎬", DefaultColor: "#FF6B6B", Label: "Video"},
	ClipTypeAudio:  {Icon: "🎵", DefaultColor: "#95E77E", Label: "Audio"},
	ClipTypeText:   {Icon: "📝", DefaultColor: "#A8E6CF", Label: "Text"},
	ClipTypeImage:  {Icon: "🖼", DefaultColor: "#FFE66D", Label: "Image"},
	ClipTypeEffect: {Icon: "✨", DefaultColor: "#C7B3E5", Label: "Effect"},
}

var trackStyles = map[TrackType]TrackStyle{
	TrackTypeVideo:   {Icon: "🎬", DefaultHeight: 70, Label: "Video track"},
	TrackTypeAudio:   {Icon: "🎵", DefaultHeight: 50, Label: "Audio track"},
	TrackTypeText:    {Icon: "📝", DefaultHeight: 50, Label: "Text track"},
	TrackTypeEffects: {Icon: "✨", DefaultHeight: 50, Label: "Effects track"},
}

func StyleForClip(t ClipType) ClipStyle {
	if s, ok := clipStyles[t]; ok {
		return s
	}
	return ClipStyle{Icon: "📄", DefaultColor: "#CCCCCC", Label: string(t)}
}

func StyleForTrack(t TrackType) TrackStyle {
	if s, ok := trackStyles[t]; ok {
		return s
	}
	return TrackStyle{Icon: "📄", DefaultHeight: 50, Label: string(t)}
}
