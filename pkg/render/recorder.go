package render

// StrokedSegment Recorder 记录的一次描边
type StrokedSegment struct {
	Segment
	Style StrokeStyle
}

// Recorder 记录所有描边的 Canvas，用于测试和无界面工具
type Recorder struct {
	PathBuilder

	Strokes  []StrokedSegment
	MaxDepth int
}

// NewRecorder 创建空的 Recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Save() {
	r.PathBuilder.Save()
	if d := r.Depth(); d > r.MaxDepth {
		r.MaxDepth = d
	}
}

func (r *Recorder) Stroke() {
	for _, seg := range r.segments {
		r.Strokes = append(r.Strokes, StrokedSegment{Segment: seg, Style: r.stroke})
	}
}

// Reset 清空记录和变换状态
func (r *Recorder) Reset() {
	*r = Recorder{}
}
