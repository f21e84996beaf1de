package iface

// ConfigSubscriber 需要接收配置更新通知的组件
type ConfigSubscriber interface {
	OnConfigUpdate(key string, value string)
}
