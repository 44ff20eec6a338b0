//go:build !mobile

package mobile

// Dummy 桌面构建下的占位导出
// 绑定入口只在 -tags mobile 时存在，这里让 ./... 在桌面上也能编译本包
func Dummy() {}
