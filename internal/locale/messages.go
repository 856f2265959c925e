package locale

import "github.com/nicksnyder/go-i18n/v2/i18n"

var vi = []*i18n.Message{
	{ID: "title", Other: AppTitle},
	{ID: "select_window", Other: "Chọn cửa sổ để ghim"},
	{ID: "unpin_all", Other: "Bỏ tất cả ghim"},
	{ID: "hotkey_label", Other: "Phím tắt: Ghim [{{.Pin}}] | Bỏ ghim [{{.Unpin}}]"},
	{ID: "menu_file", Other: "File"},
	{ID: "menu_open_location", Other: "Mở thư mục file"},
	{ID: "menu_about", Other: "Thông tin"},
	{ID: "menu_exit", Other: "Thoát"},
	{ID: "menu_theme", Other: "Giao diện"},
	{ID: "menu_white", Other: "Trắng"},
	{ID: "menu_gray", Other: "Xám"},
	{ID: "menu_black", Other: "Đen"},
	{ID: "menu_refresh", Other: "Làm mới"},
	{ID: "menu_settings", Other: "Cài đặt"},
	{ID: "settings_title", Other: "Cài đặt"},
	{ID: "settings_hotkey", Other: "Phím tắt"},
	{ID: "settings_pin", Other: "Phím tắt ghim:"},
	{ID: "settings_unpin", Other: "Phím tắt bỏ ghim:"},
	{ID: "settings_example", Other: "Ví dụ: ctrl+shift+p, alt+p\nCác phím: ctrl, shift, alt, win"},
	{ID: "settings_close_tray", Other: "Ẩn xuống khay khi đóng"},
	{ID: "settings_language", Other: "Ngôn ngữ"},
	{ID: "settings_vietnamese", Other: "Tiếng Việt"},
	{ID: "settings_english", Other: "English"},
	{ID: "btn_save", Other: "Lưu"},
	{ID: "btn_cancel", Other: "Hủy"},
	{ID: "msg_empty_hotkey", Other: "Vui lòng nhập đầy đủ phím tắt!"},
	{ID: "msg_invalid_hotkey", Other: "Phím tắt không hợp lệ: {{.Err}}"},
	{ID: "msg_cannot_open", Other: "Không thể mở thư mục: {{.Err}}"},
	{ID: "msg_tray_hidden", Other: "Ứng dụng vẫn chạy dưới khay hệ thống."},
	{ID: "tray_open", Other: "Mở"},
	{ID: "tray_exit", Other: "Thoát"},
	{ID: "about_title", Other: "Thông tin phần mềm"},
	{ID: "about_app_name", Other: "Tên: " + AppTitle},
	{ID: "about_version", Other: "Phiên bản: " + Version},
	{ID: "about_author", Other: "Tác giả: Ky Khanh Nguyen"},
}

var en = []*i18n.Message{
	{ID: "title", Other: AppTitle},
	{ID: "select_window", Other: "Select window to pin"},
	{ID: "unpin_all", Other: "Unpin all"},
	{ID: "hotkey_label", Other: "Hotkey: Pin [{{.Pin}}] | Unpin [{{.Unpin}}]"},
	{ID: "menu_file", Other: "File"},
	{ID: "menu_open_location", Other: "Open file location"},
	{ID: "menu_about", Other: "About"},
	{ID: "menu_exit", Other: "Exit"},
	{ID: "menu_theme", Other: "Theme"},
	{ID: "menu_white", Other: "White"},
	{ID: "menu_gray", Other: "Gray"},
	{ID: "menu_black", Other: "Black"},
	{ID: "menu_refresh", Other: "Refresh"},
	{ID: "menu_settings", Other: "Settings"},
	{ID: "settings_title", Other: "Settings"},
	{ID: "settings_hotkey", Other: "Hotkeys"},
	{ID: "settings_pin", Other: "Pin hotkey:"},
	{ID: "settings_unpin", Other: "Unpin hotkey:"},
	{ID: "settings_example", Other: "Example: ctrl+shift+p, alt+p\nKeys: ctrl, shift, alt, win"},
	{ID: "settings_close_tray", Other: "Close to tray"},
	{ID: "settings_language", Other: "Language"},
	{ID: "settings_vietnamese", Other: "Tiếng Việt"},
	{ID: "settings_english", Other: "English"},
	{ID: "btn_save", Other: "Save"},
	{ID: "btn_cancel", Other: "Cancel"},
	{ID: "msg_empty_hotkey", Other: "Please enter hotkeys!"},
	{ID: "msg_invalid_hotkey", Other: "Invalid hotkey: {{.Err}}"},
	{ID: "msg_cannot_open", Other: "Cannot open folder: {{.Err}}"},
	{ID: "msg_tray_hidden", Other: "Still running in the system tray."},
	{ID: "tray_open", Other: "Open"},
	{ID: "tray_exit", Other: "Exit"},
	{ID: "about_title", Other: "About"},
	{ID: "about_app_name", Other: "Name: " + AppTitle},
	{ID: "about_version", Other: "Version: " + Version},
	{ID: "about_author", Other: "Author: Ky Khanh Nguyen"},
}
