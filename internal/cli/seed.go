package cli

import "ontap-quiz-service/internal/domain"

// defaultBank is the built-in question bank the service falls back to when no
// imported bank exists. Subjects without questions for a class simply yield
// empty quizzes, which StartQuiz rejects.
func defaultBank() domain.Bank {
	return domain.Bank{
		"ÔN TẬP MÔN TOÁN": {
			"LỚP 1": mathGrade1(),
			"LỚP 2": {
				{Text: "Câu 1: 15 + 25 = ?", Options: []string{"30", "35", "40", "45"}, CorrectIndex: 2},
			},
			"LỚP 3": {
				{Text: "Câu 1: Một tuần có mấy ngày?", Options: []string{"5", "6", "7", "8"}, CorrectIndex: 2},
			},
			"LỚP 4": {
				{Text: "Câu 1: Hình vuông có cạnh 5cm thì chu vi là bao nhiêu?", Options: []string{"10cm", "15cm", "20cm", "25cm"}, CorrectIndex: 2},
			},
			"LỚP 5": {
				{Text: "Câu 1: 1/2 + 1/4 = ?", Options: []string{"2/6", "1/8", "3/4", "2/4"}, CorrectIndex: 2},
			},
		},
		"ÔN TẬP TIẾNG VIỆT": {
			"LỚP 1": vietnameseGrade1(),
			"LỚP 2": {
				{Text: "Câu 1: Từ nào chỉ hoạt động?", Options: []string{"cái bàn", "quyển vở", "chạy", "bông hoa"}, CorrectIndex: 2},
			},
			"LỚP 3": {
				{Text: "Câu 1: Dấu câu nào dùng để kết thúc một câu kể?", Options: []string{"Dấu chấm", "Dấu phẩy", "Dấu hỏi", "Dấu chấm than"}, CorrectIndex: 0},
			},
			"LỚP 4": {
				{Text: "Câu 1: Ai là người lãnh đạo cuộc khởi nghĩa Hai Bà Trưng?", Options: []string{"Trưng Trắc và Trưng Nhị", "Bà Triệu", "Lý Bí", "Ngô Quyền"}, CorrectIndex: 0},
			},
			"LỚP 5": {
				{Text: "Câu 1: Tỉnh nào của Việt Nam có diện tích lớn nhất?", Options: []string{"Thanh Hóa", "Sơn La", "Nghệ An", "Quảng Nam"}, CorrectIndex: 2},
				{Text: "Câu 2: Câu 'Trời mưa.' thuộc loại câu gì?", Options: []string{"Câu cầu khiến", "Câu cảm thán", "Câu nghi vấn", "Câu kể"}, CorrectIndex: 3},
				{Text: "Câu 3: Nước bốc hơi thành gì?", Options: []string{"Nước đá", "Hơi nước", "Sương", "Mây"}, CorrectIndex: 1},
				{Text: "Câu 4: Chiến thắng Điện Biên Phủ diễn ra vào năm nào?", Options: []string{"1945", "1954", "1968", "1975"}, CorrectIndex: 1},
			},
		},
		"ÔN TẬP TIẾNG ANH": {
			"LỚP 1": englishGrade1(),
		},
	}
}

func mathGrade1() []domain.Question {
	return []domain.Question{
		{Text: "Trong hình có mấy quả táo?", ImageURL: "https://placehold.co/600x300/ef4444/ffffff?text=5+quả+táo", Options: []string{"3", "4", "5", "6"}, CorrectIndex: 2, Difficulty: domain.DifficultyEasy},
		{Text: "Đây là hình gì?", ImageURL: "https://placehold.co/400x400/3b82f6/ffffff?text=Hình+tròn", Options: []string{"Hình vuông", "Hình tam giác", "Hình chữ nhật", "Hình tròn"}, CorrectIndex: 3, Difficulty: domain.DifficultyEasy},
		{Text: "Bông hoa nào có 5 cánh?", ImageURL: "https://placehold.co/600x300/eab308/ffffff?text=Hoa+4+cánh+%26+Hoa+5+cánh", Options: []string{"Bông hoa bên trái", "Bông hoa bên phải", "Cả hai", "Không có"}, CorrectIndex: 1, Difficulty: domain.DifficultyMedium},
		{Text: "Có 3 con vịt đang bơi, thêm 2 con nữa bơi đến. Hỏi có tất cả bao nhiêu con vịt trong hình?", ImageURL: "https://placehold.co/600x300/22c55e/ffffff?text=3+vịt+%2B+2+vịt", Options: []string{"3 con", "2 con", "5 con", "4 con"}, CorrectIndex: 2, Difficulty: domain.DifficultyMedium},
		{Text: "Trên cây có 7 quả, rụng mất 2 quả. Hỏi trên cây còn lại mấy quả?", ImageURL: "https://placehold.co/600x300/8b5cf6/ffffff?text=Cây+có+7+quả", Options: []string{"9 quả", "5 quả", "6 quả", "7 quả"}, CorrectIndex: 1, Difficulty: domain.DifficultyHard},
		{Text: "Số liền sau của số 8 là số nào?", Options: []string{"7", "8", "9", "10"}, CorrectIndex: 2, Difficulty: domain.DifficultyEasy},
		{Text: "2 + 7 = ?", Options: []string{"8", "9", "10", "6"}, CorrectIndex: 1, Difficulty: domain.DifficultyEasy},
		{Text: "10 - 4 = ?", Options: []string{"5", "7", "6", "8"}, CorrectIndex: 2, Difficulty: domain.DifficultyEasy},
		{Text: "Trong các số 3, 9, 1, 5, số lớn nhất là số nào?", Options: []string{"3", "1", "5", "9"}, CorrectIndex: 3, Difficulty: domain.DifficultyEasy},
		{Text: "5 + 0 = ?", Options: []string{"0", "50", "5", "4"}, CorrectIndex: 2, Difficulty: domain.DifficultyEasy},
		{Text: "Trong số 17, chữ số hàng chục là gì?", Options: []string{"1", "7", "10", "17"}, CorrectIndex: 0, Difficulty: domain.DifficultyEasy},
		{Text: "Điền số còn thiếu: 1, 2, 3, __, 5", Options: []string{"6", "0", "4", "7"}, CorrectIndex: 2, Difficulty: domain.DifficultyEasy},
		{Text: "8 - 3 = ?", Options: []string{"5", "6", "11", "4"}, CorrectIndex: 0, Difficulty: domain.DifficultyEasy},
		{Text: "Điền dấu thích hợp vào chỗ trống: 7 __ 5", Options: []string{"<", ">", "=", "+"}, CorrectIndex: 1, Difficulty: domain.DifficultyEasy},
		{Text: "4 + 4 = ?", Options: []string{"0", "1", "4", "8"}, CorrectIndex: 3, Difficulty: domain.DifficultyEasy},
		{Text: "9 - 9 = ?", Options: []string{"0", "1", "9", "18"}, CorrectIndex: 0, Difficulty: domain.DifficultyEasy},
		{Text: "Số bé nhất có một chữ số là số nào?", Options: []string{"1", "9", "0", "10"}, CorrectIndex: 2, Difficulty: domain.DifficultyEasy},
		{Text: "Có 3 quả táo, thêm 2 quả nữa. Hỏi có tất cả mấy quả táo?", Options: []string{"1 quả", "5 quả", "6 quả", "4 quả"}, CorrectIndex: 1, Difficulty: domain.DifficultyEasy},
		{Text: "Số gồm 1 chục và 2 đơn vị là số nào?", Options: []string{"3", "12", "21", "102"}, CorrectIndex: 1, Difficulty: domain.DifficultyEasy},
		{Text: "6 + 3 = ?", Options: []string{"3", "8", "10", "9"}, CorrectIndex: 3, Difficulty: domain.DifficultyEasy},
		{Text: "Số liền trước của số 10 là số nào?", Options: []string{"11", "9", "8", "1"}, CorrectIndex: 1, Difficulty: domain.DifficultyEasy},
		{Text: "7 - 5 = ?", Options: []string{"12", "3", "2", "4"}, CorrectIndex: 2, Difficulty: domain.DifficultyEasy},
		{Text: "Có 4 bông hoa màu đỏ và 5 bông hoa màu vàng. Hỏi có tất cả bao nhiêu bông hoa?", Options: []string{"1 bông", "8 bông", "9 bông", "10 bông"}, CorrectIndex: 2, Difficulty: domain.DifficultyEasy},
		{Text: "So sánh 8 và 8. Chọn dấu thích hợp.", Options: []string{">", "<", "=", "Không so sánh được"}, CorrectIndex: 2, Difficulty: domain.DifficultyEasy},
		{Text: "Phép tính nào có kết quả bằng 10?", Options: []string{"5 + 4", "10 - 1", "7 + 3", "2 + 9"}, CorrectIndex: 2, Difficulty: domain.DifficultyEasy},
		{Text: "12 + 5 = ?", Options: []string{"16", "7", "17", "18"}, CorrectIndex: 2, Difficulty: domain.DifficultyMedium},
		{Text: "18 - 6 = ?", Options: []string{"11", "12", "13", "24"}, CorrectIndex: 1, Difficulty: domain.DifficultyMedium},
		{Text: "Lan có 5 cái kẹo, mẹ cho thêm 7 cái. Hỏi Lan có tất cả bao nhiêu cái kẹo?", Options: []string{"2 cái", "11 cái", "12 cái", "13 cái"}, CorrectIndex: 2, Difficulty: domain.DifficultyMedium},
		{Text: "Điền số thích hợp: __ + 5 = 15", Options: []string{"5", "10", "15", "20"}, CorrectIndex: 1, Difficulty: domain.DifficultyMedium},
		{Text: "Trong một tuần lễ, em đi học mấy ngày (từ thứ Hai đến thứ Sáu)?", Options: []string{"7 ngày", "6 ngày", "5 ngày", "4 ngày"}, CorrectIndex: 2, Difficulty: domain.DifficultyMedium},
		{Text: "19 - __ = 11", Options: []string{"7", "8", "9", "10"}, CorrectIndex: 1, Difficulty: domain.DifficultyMedium},
		{Text: "Hình vuông có mấy cạnh bằng nhau?", Options: []string{"2 cạnh", "3 cạnh", "4 cạnh", "Không có cạnh nào"}, CorrectIndex: 2, Difficulty: domain.DifficultyMedium},
		{Text: "Số lớn nhất có hai chữ số mà chữ số hàng chục là 1 là số nào?", Options: []string{"10", "11", "18", "19"}, CorrectIndex: 3, Difficulty: domain.DifficultyMedium},
		{Text: "An có 15 viên bi, An cho Bình 4 viên. Hỏi An còn lại mấy viên bi?", Options: []string{"19 viên", "11 viên", "10 viên", "12 viên"}, CorrectIndex: 1, Difficulty: domain.DifficultyMedium},
		{Text: "9 + 8 = ?", Options: []string{"16", "1", "18", "17"}, CorrectIndex: 3, Difficulty: domain.DifficultyMedium},
		{Text: "16 - 9 = ?", Options: []string{"6", "7", "8", "25"}, CorrectIndex: 1, Difficulty: domain.DifficultyMedium},
		{Text: "Sắp xếp các số 11, 2, 17, 9 theo thứ tự từ lớn đến bé.", Options: []string{"2, 9, 11, 17", "17, 11, 9, 2", "17, 9, 11, 2", "2, 11, 9, 17"}, CorrectIndex: 1, Difficulty: domain.DifficultyMedium},
		{Text: "1 chục + 5 đơn vị = ?", Options: []string{"6", "51", "15", "105"}, CorrectIndex: 2, Difficulty: domain.DifficultyMedium},
		{Text: "Tìm x, biết: x - 7 = 10", Options: []string{"3", "17", "10", "7"}, CorrectIndex: 1, Difficulty: domain.DifficultyMedium},
		{Text: "Một con gà có 2 chân. Hỏi 4 con gà có bao nhiêu chân?", Options: []string{"6 chân", "4 chân", "8 chân", "10 chân"}, CorrectIndex: 2, Difficulty: domain.DifficultyMedium},
		{Text: "Số 15 gồm mấy chục và mấy đơn vị?", Options: []string{"1 chục và 5 đơn vị", "5 chục và 1 đơn vị", "10 chục và 5 đơn vị", "15 chục và 0 đơn vị"}, CorrectIndex: 0, Difficulty: domain.DifficultyMedium},
		{Text: "7 + 6 = ?", Options: []string{"1", "12", "13", "14"}, CorrectIndex: 2, Difficulty: domain.DifficultyMedium},
		{Text: "Có 12 quả cam, đã ăn hết 5 quả. Hỏi còn lại mấy quả cam?", Options: []string{"17 quả", "7 quả", "8 quả", "6 quả"}, CorrectIndex: 1, Difficulty: domain.DifficultyMedium},
		{Text: "Số bé nhất có hai chữ số khác nhau là số nào?", Options: []string{"11", "01", "10", "12"}, CorrectIndex: 2, Difficulty: domain.DifficultyMedium},
		{Text: "Độ dài một gang tay của em khoảng bao nhiêu cm?", Options: []string{"1 cm", "100 cm", "50 cm", "15 cm"}, CorrectIndex: 3, Difficulty: domain.DifficultyMedium},
		{Text: "Trên cành cây có 10 con chim, bay đi 3 con, rồi lại có 5 con khác bay đến. Hỏi trên cành có bao nhiêu con chim?", Options: []string{"8 con", "12 con", "15 con", "18 con"}, CorrectIndex: 1, Difficulty: domain.DifficultyHard},
		{Text: "Điền số tiếp theo vào dãy số: 10, 12, 14, __, 18", Options: []string{"15", "17", "16", "20"}, CorrectIndex: 2, Difficulty: domain.DifficultyHard},
		{Text: "Mẹ mua về 15 quả trứng, mẹ dùng 4 quả để rán và 5 quả để luộc. Hỏi mẹ còn lại bao nhiêu quả trứng?", Options: []string{"9 quả", "11 quả", "6 quả", "5 quả"}, CorrectIndex: 2, Difficulty: domain.DifficultyHard},
		{Text: "Từ các chữ số 1, 5, 6, có thể lập được bao nhiêu số có hai chữ số khác nhau?", Options: []string{"3 số", "4 số", "9 số", "6 số"}, CorrectIndex: 3, Difficulty: domain.DifficultyHard},
		{Text: "Hôm nay là thứ Ba. Hỏi 4 ngày nữa là thứ mấy?", Options: []string{"Thứ Sáu", "Thứ Bảy", "Chủ Nhật", "Thứ Năm"}, CorrectIndex: 1, Difficulty: domain.DifficultyHard},
		{Text: "An hơn Bình 3 tuổi. Năm nay An 10 tuổi. Hỏi Bình mấy tuổi?", Options: []string{"13 tuổi", "8 tuổi", "7 tuổi", "6 tuổi"}, CorrectIndex: 2, Difficulty: domain.DifficultyHard},
		{Text: "Tìm một số, biết rằng lấy số đó cộng với 5 rồi trừ đi 2 thì được 13.", Options: []string{"10", "11", "8", "16"}, CorrectIndex: 0, Difficulty: domain.DifficultyHard},
		{Text: "Số lớn nhất có hai chữ số mà tổng hai chữ số bằng 9 là số nào?", Options: []string{"18", "81", "90", "99"}, CorrectIndex: 2, Difficulty: domain.DifficultyHard},
		{Text: "5 + __ > 11. Số nhỏ nhất có thể điền vào chỗ trống là?", Options: []string{"5", "6", "7", "8"}, CorrectIndex: 2, Difficulty: domain.DifficultyHard},
		{Text: "Anh có 18 cái kẹo, em có ít hơn anh 7 cái. Hỏi cả hai anh em có bao nhiêu cái kẹo?", Options: []string{"11 cái", "25 cái", "29 cái", "32 cái"}, CorrectIndex: 2, Difficulty: domain.DifficultyHard},
		{Text: "19 - 8 + 5 = ?", Options: []string{"6", "11", "16", "22"}, CorrectIndex: 2, Difficulty: domain.DifficultyHard},
		{Text: "Tìm hai số có tổng bằng 12 và hiệu bằng 2.", Options: []string{"6 và 6", "8 và 4", "7 và 5", "10 và 2"}, CorrectIndex: 2, Difficulty: domain.DifficultyHard},
		{Text: "Ba năm nữa, tuổi của Hoa là 10. Hỏi năm ngoái Hoa mấy tuổi?", Options: []string{"7 tuổi", "6 tuổi", "5 tuổi", "13 tuổi"}, CorrectIndex: 1, Difficulty: domain.DifficultyHard},
		{Text: "Có bao nhiêu số có hai chữ số mà chữ số hàng đơn vị là 9?", Options: []string{"8 số", "9 số", "10 số", "1 số"}, CorrectIndex: 1, Difficulty: domain.DifficultyHard},
		{Text: "Một sợi dây dài 15cm, cắt đi một đoạn. Đoạn còn lại dài 8cm. Hỏi đoạn cắt đi dài bao nhiêu cm?", Options: []string{"23cm", "7cm", "8cm", "10cm"}, CorrectIndex: 1, Difficulty: domain.DifficultyHard},
		{Text: "4 + 7 + 6 = ?", Options: []string{"11", "13", "17", "18"}, CorrectIndex: 2, Difficulty: domain.DifficultyHard},
		{Text: "Lớp 1A có 20 bạn, trong đó có 12 bạn nữ. Hỏi số bạn nam ít hơn số bạn nữ bao nhiêu bạn?", Options: []string{"8 bạn", "4 bạn", "2 bạn", "10 bạn"}, CorrectIndex: 1, Difficulty: domain.DifficultyHard},
		{Text: "Tìm số có hai chữ số, biết chữ số hàng chục là số liền sau của 4, chữ số hàng đơn vị là số liền trước của 2.", Options: []string{"41", "51", "52", "42"}, CorrectIndex: 1, Difficulty: domain.DifficultyHard},
		{Text: "Trong chuồng có cả gà và thỏ. Đếm được tất cả 5 cái đầu và 14 cái chân. Hỏi có mấy con gà, mấy con thỏ?", Options: []string{"2 gà, 3 thỏ", "4 gà, 1 thỏ", "3 gà, 2 thỏ", "1 gà, 4 thỏ"}, CorrectIndex: 2, Difficulty: domain.DifficultyHard},
		{Text: "Trong hộp có 5 bi xanh và 4 bi đỏ. Không nhìn vào hộp, phải lấy ra ít nhất bao nhiêu viên bi để chắc chắn có được 1 viên bi đỏ?", Options: []string{"1 viên", "5 viên", "6 viên", "9 viên"}, CorrectIndex: 2, Difficulty: domain.DifficultyHard},
	}
}

func vietnameseGrade1() []domain.Question {
	return []domain.Question{
		{Text: "Đây là con vật gì?", ImageURL: "https://placehold.co/400x400/f97316/ffffff?text=Con+Mèo", Options: []string{"Con chó", "Con gà", "Con lợn", "Con mèo"}, CorrectIndex: 3, Difficulty: domain.DifficultyEasy},
		{Text: "Đồ vật trong hình là cái gì?", ImageURL: "https://placehold.co/400x400/14b8a6/ffffff?text=Cái+cặp", Options: []string{"Cái bàn", "Cái cặp", "Cái ghế", "Quyển sách"}, CorrectIndex: 1, Difficulty: domain.DifficultyEasy},
		{Text: "Tìm từ tương ứng với hình ảnh.", ImageURL: "https://placehold.co/400x400/64748b/ffffff?text=Ngôi+nhà", Options: []string{"ngôi nhà", "ngôi sao", "dòng sông", "bông hoa"}, CorrectIndex: 0, Difficulty: domain.DifficultyMedium},
		{Text: "Trong hình, em bé đang làm gì?", ImageURL: "https://placehold.co/600x300/ec4899/ffffff?text=Bé+đang+đọc+sách", Options: []string{"Đang ngủ", "Đang ăn", "Đang đọc sách", "Đang chơi"}, CorrectIndex: 2, Difficulty: domain.DifficultyMedium},
		{Text: "Câu nào miêu tả đúng hình ảnh?", ImageURL: "https://placehold.co/600x300/0ea5e9/ffffff?text=Mặt+trời+tỏa+nắng", Options: []string{"Trời đang mưa.", "Mặt trời đang tỏa nắng.", "Trời đầy mây.", "Trời tối."}, CorrectIndex: 1, Difficulty: domain.DifficultyHard},
		{Text: "Điền 'ch' hay 'tr' vào chỗ trống: quả __anh", Options: []string{"ch", "tr"}, CorrectIndex: 0, Difficulty: domain.DifficultyEasy},
		{Text: "Chọn từ viết đúng: ", Options: []string{"cái bàn", "cái bàng"}, CorrectIndex: 0, Difficulty: domain.DifficultyEasy},
		{Text: "Vần 'ay' có trong từ nào sau đây?", Options: []string{"máy bay", "mây bay"}, CorrectIndex: 0, Difficulty: domain.DifficultyEasy},
		{Text: "Điền 'g' hay 'gh' vào chỗ trống: __ế gỗ", Options: []string{"g", "gh"}, CorrectIndex: 1, Difficulty: domain.DifficultyEasy},
		{Text: "Con vật nào kêu 'meo meo'?", Options: []string{"Con chó", "Con mèo", "Con lợn", "Con gà"}, CorrectIndex: 1, Difficulty: domain.DifficultyEasy},
		{Text: "Điền vần 'ươn' hay 'ương' vào chỗ trống: con đ__`g", Options: []string{"ươn", "ương"}, CorrectIndex: 1, Difficulty: domain.DifficultyEasy},
		{Text: "Trong từ 'sách vở', tiếng nào có thanh sắc?", Options: []string{"sách", "vở", "cả hai", "không có"}, CorrectIndex: 0, Difficulty: domain.DifficultyEasy},
		{Text: "Điền chữ còn thiếu vào chỗ trống: b__ông hoa", Options: []string{"â", "o", "ô", "a"}, CorrectIndex: 2, Difficulty: domain.DifficultyEasy},
		{Text: "Cái gì dùng để viết?", Options: []string{"Cục tẩy", "Cái bút", "Quyển vở", "Cái thước"}, CorrectIndex: 1, Difficulty: domain.DifficultyEasy},
		{Text: "Tìm từ có tiếng chứa vần 'an'.", Options: []string{"cái bảng", "quả banh", "cái làn", "cả ba từ trên"}, CorrectIndex: 0, Difficulty: domain.DifficultyEasy},
		{Text: "Điền 'd', 'gi' hay 'r' vào chỗ trống: __a đình", Options: []string{"d", "gi", "r"}, CorrectIndex: 1, Difficulty: domain.DifficultyEasy},
		{Text: "Từ 'bố mẹ' có mấy tiếng?", Options: []string{"1 tiếng", "2 tiếng", "3 tiếng", "4 tiếng"}, CorrectIndex: 1, Difficulty: domain.DifficultyEasy},
		{Text: "Chữ cái đầu tiên trong bảng chữ cái tiếng Việt là gì?", Options: []string{"ă", "â", "a", "b"}, CorrectIndex: 2, Difficulty: domain.DifficultyEasy},
		{Text: "Tìm từ viết sai chính tả:", Options: []string{"ngôi sao", "ngoi sao", "ngôi nhà", "dòng sông"}, CorrectIndex: 1, Difficulty: domain.DifficultyEasy},
		{Text: "Điền dấu hỏi hoặc dấu ngã vào chữ 'mu': cái m__", Options: []string{"dấu hỏi", "dấu ngã"}, CorrectIndex: 1, Difficulty: domain.DifficultyEasy},
		{Text: "Hoa gì thường có màu đỏ và có gai?", Options: []string{"Hoa cúc", "Hoa mai", "Hoa hồng", "Hoa lan"}, CorrectIndex: 2, Difficulty: domain.DifficultyEasy},
		{Text: "Âm 'nh' có trong từ nào sau đây?", Options: []string{"cái nhà", "con nga", "quả na", "bông hoa"}, CorrectIndex: 0, Difficulty: domain.DifficultyEasy},
		{Text: "Từ 'học sinh' chỉ ai?", Options: []string{"Chỉ đồ vật", "Chỉ con vật", "Chỉ người", "Chỉ cây cối"}, CorrectIndex: 2, Difficulty: domain.DifficultyEasy},
		{Text: "Điền 'c' hay 'k' vào chỗ trống: __im én", Options: []string{"c", "k"}, CorrectIndex: 1, Difficulty: domain.DifficultyEasy},
		{Text: "Trong từ 'cây tre', tiếng nào đứng trước?", Options: []string{"tre", "cây", "bằng nhau", "không có"}, CorrectIndex: 1, Difficulty: domain.DifficultyEasy},
		{Text: "Sắp xếp các từ sau để tạo thành câu: đá, bé, bóng.", Options: []string{"Bé bóng đá.", "Đá bé bóng.", "Bé đá bóng.", "Bóng đá bé."}, CorrectIndex: 2, Difficulty: domain.DifficultyMedium},
		{Text: "Câu 'Mẹ em là cô giáo.' kết thúc bằng dấu câu gì?", Options: []string{"Dấu hỏi", "Dấu chấm", "Dấu chấm than", "Dấu phẩy"}, CorrectIndex: 1, Difficulty: domain.DifficultyMedium},
		{Text: "Từ nào chỉ hoạt động trong các từ sau: quyển sách, đi học, cái cây.", Options: []string{"quyển sách", "đi học", "cái cây", "tất cả"}, CorrectIndex: 1, Difficulty: domain.DifficultyMedium},
		{Text: "Tìm từ trái nghĩa với 'trắng'.", Options: []string{"xanh", "vàng", "đen", "đỏ"}, CorrectIndex: 2, Difficulty: domain.DifficultyMedium},
		{Text: "Trong câu 'Con mèo đang trèo cây cau.', con vật nào được nhắc đến?", Options: []string{"con chó", "con gà", "con mèo", "con cau"}, CorrectIndex: 2, Difficulty: domain.DifficultyMedium},
		{Text: "Điền từ còn thiếu vào câu: 'Ngoài vườn, hoa hồng ... đỏ thắm.'", Options: []string{"héo", "nở", "bay", "chạy"}, CorrectIndex: 1, Difficulty: domain.DifficultyMedium},
		{Text: "'Ai là người trồng cây?' - Đây là loại câu gì?", Options: []string{"Câu kể", "Câu cảm", "Câu hỏi", "Câu cầu khiến"}, CorrectIndex: 2, Difficulty: domain.DifficultyMedium},
		{Text: "Tìm từ chỉ đồ vật:", Options: []string{"quả cam", "cái cặp", "con chó", "cây bàng"}, CorrectIndex: 1, Difficulty: domain.DifficultyMedium},
		{Text: "Từ 'long lanh' là từ loại gì?", Options: []string{"Từ đơn", "Từ ghép", "Từ láy", "Danh từ"}, CorrectIndex: 2, Difficulty: domain.DifficultyMedium},
		{Text: "Câu nào sau đây là câu kể?", Options: []string{"Bạn tên là gì?", "Bông hoa này đẹp quá!", "Em đang học bài.", "Hãy trật tự!"}, CorrectIndex: 2, Difficulty: domain.DifficultyMedium},
		{Text: "Từ nào không cùng nhóm với các từ còn lại: bàn, ghế, tủ, quả táo.", Options: []string{"bàn", "ghế", "tủ", "quả táo"}, CorrectIndex: 3, Difficulty: domain.DifficultyMedium},
		{Text: "Bộ phận chính của cây gồm những gì?", Options: []string{"rễ, thân, lá", "hoa, quả", "cành, ngọn", "tất cả đều đúng"}, CorrectIndex: 0, Difficulty: domain.DifficultyMedium},
		{Text: "Viết lại câu sau cho đúng chính tả: 'em thích đi học'", Options: []string{"em thích đi Học", "Em thích đi học.", "em thích đi học.", "Em thích đi Học."}, CorrectIndex: 1, Difficulty: domain.DifficultyMedium},
		{Text: "Từ nào viết đúng chính tả?", Options: []string{"rũng cảm", "dũng cảm", "dũng cãm", "rũng cãm"}, CorrectIndex: 1, Difficulty: domain.DifficultyMedium},
		{Text: "Kể tên một loại quả có vị chua.", Options: []string{"Quả chuối", "Quả dưa hấu", "Quả chanh", "Quả na"}, CorrectIndex: 2, Difficulty: domain.DifficultyMedium},
		{Text: "Câu 'Hôm nay, trời nắng đẹp.' nói về điều gì?", Options: []string{"Con người", "Sự vật", "Thời tiết", "Cảm xúc"}, CorrectIndex: 2, Difficulty: domain.DifficultyMedium},
		{Text: "Tìm câu có hình ảnh so sánh.", Options: []string{"Em đi học.", "Mặt trời đỏ như quả cầu lửa.", "Con mèo đang ngủ.", "Trời mưa to."}, CorrectIndex: 1, Difficulty: domain.DifficultyMedium},
		{Text: "'Chú bộ đội' - cụm từ này chỉ ai?", Options: []string{"Chỉ đồ vật", "Chỉ người", "Chỉ con vật", "Chỉ thời gian"}, CorrectIndex: 1, Difficulty: domain.DifficultyMedium},
		{Text: "Tìm 2 từ chỉ màu sắc.", Options: []string{"nhanh, chậm", "cao, thấp", "xanh, đỏ", "vui, buồn"}, CorrectIndex: 2, Difficulty: domain.DifficultyMedium},
		{Text: "Trong câu 'Bé giúp mẹ quét nhà.', từ chỉ hoạt động là từ nào?", Options: []string{"Bé", "mẹ", "nhà", "giúp, quét"}, CorrectIndex: 3, Difficulty: domain.DifficultyMedium},
		{Text: "Đọc đoạn văn: 'Nhà Lan có một vườn cây nhỏ. Trong vườn trồng rất nhiều hoa cúc màu vàng tươi. Lan rất thích ra vườn ngắm hoa.' Hỏi: Vườn nhà Lan trồng hoa gì?", Options: []string{"Hoa hồng", "Hoa mai", "Hoa cúc", "Hoa lan"}, CorrectIndex: 2, Difficulty: domain.DifficultyHard},
		{Text: "Tìm lỗi sai và sửa lại câu: 'Con châu đang gặm cỏ.'", Options: []string{"châu -> trâu", "gặm -> gậm", "cỏ -> cõ", "Câu đúng"}, CorrectIndex: 0, Difficulty: domain.DifficultyHard},
		{Text: "Giải câu đố: 'Con gì đuôi ngắn tai dài / Mắt hồng lông mượt có tài chạy nhanh?'", Options: []string{"Con mèo", "Con thỏ", "Con chó", "Con hươu"}, CorrectIndex: 1, Difficulty: domain.DifficultyHard},
		{Text: "Từ 'chăm chỉ' đồng nghĩa với từ nào?", Options: []string{"lười biếng", "siêng năng", "thông minh", "nhanh nhẹn"}, CorrectIndex: 1, Difficulty: domain.DifficultyHard},
		{Text: "Xác định danh từ, động từ trong câu: 'Bé đọc sách.'", Options: []string{"Bé(DT), đọc(ĐT), sách(DT)", "Bé(ĐT), đọc(DT), sách(ĐT)", "Bé(DT), đọc(DT), sách(ĐT)", "Tất cả là danh từ"}, CorrectIndex: 0, Difficulty: domain.DifficultyHard},
		{Text: "Điền 's' hay 'x' cho đúng: __inh đẹp, __ản xuất", Options: []string{"s, x", "x, s", "s, s", "x, x"}, CorrectIndex: 1, Difficulty: domain.DifficultyHard},
		{Text: "Đặt câu hỏi cho bộ phận được gạch chân trong câu: 'Lan học bài <u>rất chăm chỉ</u>.'", Options: []string{"Lan học bài làm gì?", "Lan học bài ở đâu?", "Lan học bài khi nào?", "Lan học bài như thế nào?"}, CorrectIndex: 3, Difficulty: domain.DifficultyHard},
		{Text: "Viết một câu có sử dụng dấu phẩy.", Options: []string{"Em yêu trường em.", "Mẹ em mua cam, quýt và táo.", "Hôm nay trời đẹp quá!", "Bạn có khỏe không?"}, CorrectIndex: 1, Difficulty: domain.DifficultyHard},
		{Text: "Từ 'hiền lành' trái nghĩa với từ nào?", Options: []string{"dữ tợn", "tốt bụng", "chăm chỉ", "thật thà"}, CorrectIndex: 0, Difficulty: domain.DifficultyHard},
		{Text: "Trong câu 'Mắt của bé tròn xoe.', từ nào là từ chỉ đặc điểm?", Options: []string{"Mắt", "bé", "của", "tròn xoe"}, CorrectIndex: 3, Difficulty: domain.DifficultyHard},
		{Text: "Gạch chân dưới từ chỉ người trong câu: 'Bác nông dân đang cày ruộng.'", Options: []string{"ruộng", "cày", "Bác nông dân", "đang"}, CorrectIndex: 2, Difficulty: domain.DifficultyHard},
		{Text: "Viết một câu cảm thán.", Options: []string{"Em đang học bài.", "Ôi, bông hoa đẹp quá!", "Ngày mai bạn đi đâu?", "Mẹ em là bác sĩ."}, CorrectIndex: 1, Difficulty: domain.DifficultyHard},
		{Text: "Dựa vào từ 'đi', hãy tạo ra 2 từ ghép.", Options: []string{"đi đứng, đi chơi", "đi lại, đứng lại", "chơi đùa, đi bộ", "tất cả đều sai"}, CorrectIndex: 0, Difficulty: domain.DifficultyHard},
		{Text: "Trong các từ sau, từ nào là từ láy: 'sạch sẽ', 'sạch bong', 'sạch đẹp'", Options: []string{"sạch sẽ", "sạch bong", "sạch đẹp", "không có"}, CorrectIndex: 0, Difficulty: domain.DifficultyHard},
		{Text: "Hoàn thành câu thành ngữ: 'Học thầy không tày...'", Options: []string{"học thêm", "học nữa", "học bạn", "học mãi"}, CorrectIndex: 2, Difficulty: domain.DifficultyHard},
		{Text: "Điền cặp vần thích hợp 'iu-êu' vào chỗ trống: 'Buổi ch..., gió thổi h... h...'.", Options: []string{"iều, iu", "êu, iu", "iu, iều", "êu, iều"}, CorrectIndex: 0, Difficulty: domain.DifficultyHard},
		{Text: "Tìm từ có tiếng bắt đầu bằng 'ng' và một từ có tiếng bắt đầu bằng 'ngh'.", Options: []string{"ngủ, nghe", "ngã, nghiêng", "ngon, ghế", "tất cả đều đúng"}, CorrectIndex: 3, Difficulty: domain.DifficultyHard},
		{Text: "Câu nào dưới đây sử dụng sai từ 'sôi sụt'?", Options: []string{"Nước mắt chảy sụt sùi.", "Bụng đói sôi sùng sục.", "Nồi canh sôi sùng sục.", "Em bé khóc sụt sùi."}, CorrectIndex: 1, Difficulty: domain.DifficultyHard},
		{Text: "Kể tên 3 đồ dùng học tập của em.", Options: []string{"bàn, ghế, tủ", "bát, đũa, thìa", "bút, thước, tẩy", "quần, áo, mũ"}, CorrectIndex: 2, Difficulty: domain.DifficultyHard},
		{Text: "Trong các cặp từ sau, cặp từ nào trái nghĩa với nhau?", Options: []string{"hiền lành - tốt bụng", "nhanh nhẹn - chậm chạp", "vui vẻ - sung sướng", "chăm chỉ - siêng năng"}, CorrectIndex: 1, Difficulty: domain.DifficultyHard},
	}
}

func englishGrade1() []domain.Question {
	return []domain.Question{
		{Text: "What color is an apple?", Options: []string{"Blue", "Yellow", "Red", "Green"}, CorrectIndex: 2, Difficulty: domain.DifficultyEasy},
		{Text: "How many pencils are there? (Image of 3 pencils)", Options: []string{"One", "Two", "Three", "Four"}, CorrectIndex: 2, Difficulty: domain.DifficultyEasy},
		{Text: "What is this? (Image of a cat)", Options: []string{"A dog", "A cat", "A bird", "A fish"}, CorrectIndex: 1, Difficulty: domain.DifficultyEasy},
		{Text: "Choose the correct greeting:", Options: []string{"Goodbye", "Hello", "Hlelo", "Thank you"}, CorrectIndex: 1, Difficulty: domain.DifficultyEasy},
		{Text: "What number is this: '5'?", Options: []string{"Four", "Five", "Six", "Seven"}, CorrectIndex: 1, Difficulty: domain.DifficultyEasy},
		{Text: "A dog says...", Options: []string{"Meow", "Woof", "Moo", "Oink"}, CorrectIndex: 1, Difficulty: domain.DifficultyEasy},
		{Text: "How to answer 'What is your name?'", Options: []string{"I'm fine", "I'm 6", "My name is Lan", "Goodbye"}, CorrectIndex: 2, Difficulty: domain.DifficultyEasy},
		{Text: "What is this? (Image of a book)", Options: []string{"A pen", "A ruler", "A book", "A bag"}, CorrectIndex: 2, Difficulty: domain.DifficultyEasy},
		{Text: "Find the odd one out:", Options: []string{"apple", "banana", "car", "orange"}, CorrectIndex: 2, Difficulty: domain.DifficultyEasy},
		{Text: "What color is the sky?", Options: []string{"Red", "Green", "Yellow", "Blue"}, CorrectIndex: 3, Difficulty: domain.DifficultyEasy},
		{Text: "How are you?", Options: []string{"I'm fine, thank you.", "My name is Quan.", "Hello.", "It's a cat."}, CorrectIndex: 0, Difficulty: domain.DifficultyEasy},
		{Text: "One, two, ..., four.", Options: []string{"five", "three", "six", "zero"}, CorrectIndex: 1, Difficulty: domain.DifficultyEasy},
		{Text: "A fish can...", Options: []string{"fly", "run", "swim", "sing"}, CorrectIndex: 2, Difficulty: domain.DifficultyEasy},
		{Text: "The opposite of 'big' is...", Options: []string{"tall", "small", "long", "short"}, CorrectIndex: 1, Difficulty: domain.DifficultyEasy},
		{Text: "What is this? (Image of a ball)", Options: []string{"A doll", "A car", "A robot", "A ball"}, CorrectIndex: 3, Difficulty: domain.DifficultyEasy},
		{Text: "What letter is this: 'B'?", Options: []string{"A", "D", "C", "B"}, CorrectIndex: 3, Difficulty: domain.DifficultyEasy},
		{Text: "This is an...", Options: []string{"apple", "ant", "arm", "alligator"}, CorrectIndex: 1, Difficulty: domain.DifficultyEasy},
		{Text: "How do you spell the number '1'?", Options: []string{"t-w-o", "o-n-e", "t-e-n", "n-o-e"}, CorrectIndex: 1, Difficulty: domain.DifficultyEasy},
		{Text: "When you leave, you say...", Options: []string{"Hello", "Good morning", "Goodbye", "Thank you"}, CorrectIndex: 2, Difficulty: domain.DifficultyEasy},
		{Text: "What is this? (Image of the sun)", Options: []string{"The moon", "A star", "The sun", "A cloud"}, CorrectIndex: 2, Difficulty: domain.DifficultyEasy},
		{Text: "It is a ... (Image of a yellow pencil)", Options: []string{"yellow pencil", "pencil yellow", "a yellow", "a pencil"}, CorrectIndex: 0, Difficulty: domain.DifficultyMedium},
		{Text: "I have two ... (Image of eyes)", Options: []string{"noses", "ears", "eyes", "hands"}, CorrectIndex: 2, Difficulty: domain.DifficultyMedium},
		{Text: "Fill in the blank: 'This __ a pen.'", Options: []string{"am", "is", "are", "be"}, CorrectIndex: 1, Difficulty: domain.DifficultyMedium},
		{Text: "What can you do? (Image of someone running)", Options: []string{"I can read.", "I can jump.", "I can run.", "I can swim."}, CorrectIndex: 2, Difficulty: domain.DifficultyMedium},
		{Text: "The book is __ the table. (Image of a book ON a table)", Options: []string{"in", "on", "under", "at"}, CorrectIndex: 1, Difficulty: domain.DifficultyMedium},
		{Text: "Is it a bird? (Image of a plane)", Options: []string{"Yes, it is.", "No, it is.", "Yes, it isn't.", "No, it isn't."}, CorrectIndex: 3, Difficulty: domain.DifficultyMedium},
		{Text: "What's the weather like? (Image of a sunny day)", Options: []string{"It's rainy.", "It's windy.", "It's cloudy.", "It's sunny."}, CorrectIndex: 3, Difficulty: domain.DifficultyMedium},
		{Text: "This is my... (Image pointing to a head)", Options: []string{"arm", "leg", "head", "foot"}, CorrectIndex: 2, Difficulty: domain.DifficultyMedium},
		{Text: "Can you fly?", Options: []string{"Yes, I can.", "No, I can't.", "Yes, I do.", "No, I don't."}, CorrectIndex: 1, Difficulty: domain.DifficultyMedium},
		{Text: "How old are you?", Options: []string{"I'm fine.", "I'm six years old.", "My name is Peter.", "I like dogs."}, CorrectIndex: 1, Difficulty: domain.DifficultyMedium},
		{Text: "What shape is this? (Image of a square)", Options: []string{"A circle", "A triangle", "A square", "A star"}, CorrectIndex: 2, Difficulty: domain.DifficultyMedium},
		{Text: "The cat is sleeping __ the box. (Image of a cat IN a box)", Options: []string{"on", "at", "in", "under"}, CorrectIndex: 2, Difficulty: domain.DifficultyMedium},
		{Text: "Unscramble the word: 'atc'", Options: []string{"tac", "act", "cat", "tca"}, CorrectIndex: 2, Difficulty: domain.DifficultyMedium},
		{Text: "Do you have a pet?", Options: []string{"Yes, I do.", "Yes, I am.", "No, I can't.", "Yes, it is."}, CorrectIndex: 0, Difficulty: domain.DifficultyMedium},
		{Text: "I go to school by... (Image of a bus)", Options: []string{"car", "train", "bus", "bike"}, CorrectIndex: 2, Difficulty: domain.DifficultyMedium},
		{Text: "What is he doing? (Image of a boy reading)", Options: []string{"He is sleeping.", "He is eating.", "He is reading.", "He is playing."}, CorrectIndex: 2, Difficulty: domain.DifficultyMedium},
		{Text: "A monkey likes to eat...", Options: []string{"carrots", "bananas", "fish", "cake"}, CorrectIndex: 1, Difficulty: domain.DifficultyMedium},
		{Text: "What animal is big and grey?", Options: []string{"A mouse", "An elephant", "A tiger", "A bird"}, CorrectIndex: 1, Difficulty: domain.DifficultyMedium},
		{Text: "This is my... (Image of a family)", Options: []string{"school", "house", "family", "friend"}, CorrectIndex: 2, Difficulty: domain.DifficultyMedium},
		{Text: "What do you do in the morning?", Options: []string{"Go to bed", "Eat dinner", "Wake up", "Watch TV"}, CorrectIndex: 2, Difficulty: domain.DifficultyMedium},
		{Text: "Read and answer: 'My name is Tom. I have a red car and a blue ball.' - What color is Tom's car?", Options: []string{"Blue", "Red", "Green", "Yellow"}, CorrectIndex: 1, Difficulty: domain.DifficultyHard},
		{Text: "Make a sentence:", Options: []string{"is / This / my / school.", "This is my school.", "My school is this.", "School my is this."}, CorrectIndex: 1, Difficulty: domain.DifficultyHard},
		{Text: "Where is the apple? (Image of an apple UNDER a tree)", Options: []string{"It is on the tree.", "It is in the tree.", "It is under the tree.", "It is the tree."}, CorrectIndex: 2, Difficulty: domain.DifficultyHard},
		{Text: "There are five birds. Two birds fly away. How many birds are left?", Options: []string{"Five", "Two", "Seven", "Three"}, CorrectIndex: 3, Difficulty: domain.DifficultyHard},
		{Text: "What time is it? (Image of a clock at 9:00)", Options: []string{"It's 9 o'clock.", "It's 12 o'clock.", "It's 3 o'clock.", "It's 6 o'clock."}, CorrectIndex: 0, Difficulty: domain.DifficultyHard},
		{Text: "Describe the picture: (Image of a girl eating an apple)", Options: []string{"The girl is sleeping.", "The girl is eating an apple.", "The boy is eating a banana.", "The girl has a book."}, CorrectIndex: 1, Difficulty: domain.DifficultyHard},
		{Text: "Who is this? (Image of a doctor)", Options: []string{"A teacher", "A police officer", "A doctor", "A farmer"}, CorrectIndex: 2, Difficulty: domain.DifficultyHard},
		{Text: "Which one is different?", Options: []string{"Lion", "Tiger", "Monkey", "Fish"}, CorrectIndex: 3, Difficulty: domain.DifficultyHard},
		{Text: "Fill in the blanks: 'I can __ with my eyes, and I can __ with my ears.'", Options: []string{"see, hear", "hear, see", "smell, touch", "run, jump"}, CorrectIndex: 0, Difficulty: domain.DifficultyHard},
		{Text: "What is the plural of 'book'?", Options: []string{"bookes", "books", "book's", "booking"}, CorrectIndex: 1, Difficulty: domain.DifficultyHard},
		{Text: "Ask a question for the answer: 'I live in Hanoi.'", Options: []string{"What is your name?", "How old are you?", "Where do you live?", "Do you like Hanoi?"}, CorrectIndex: 2, Difficulty: domain.DifficultyHard},
		{Text: "Correct the sentence: 'He have a dog.'", Options: []string{"He has a dog.", "He is a dog.", "He are a dog.", "He haves a dog."}, CorrectIndex: 0, Difficulty: domain.DifficultyHard},
		{Text: "What are they? (Image of grapes)", Options: []string{"They are apples.", "They are bananas.", "They are grapes.", "It is a grape."}, CorrectIndex: 2, Difficulty: domain.DifficultyHard},
		{Text: "I wear this on my feet. What is it?", Options: []string{"A hat", "A T-shirt", "Shoes", "Gloves"}, CorrectIndex: 2, Difficulty: domain.DifficultyHard},
		{Text: "The opposite of 'hot' is...", Options: []string{"warm", "cold", "sunny", "cool"}, CorrectIndex: 1, Difficulty: domain.DifficultyHard},
		{Text: "Can a fish climb a tree?", Options: []string{"Yes, it can.", "No, it can't.", "Maybe.", "I don't know."}, CorrectIndex: 1, Difficulty: domain.DifficultyHard},
		{Text: "What is the boy wearing? (Image of a boy with a T-shirt and shorts)", Options: []string{"A dress", "A jacket and pants", "A T-shirt and shorts", "A sweater"}, CorrectIndex: 2, Difficulty: domain.DifficultyHard},
		{Text: "What animal says 'oink'?", Options: []string{"A sheep", "A cow", "A pig", "A duck"}, CorrectIndex: 2, Difficulty: domain.DifficultyHard},
		{Text: "My mother's son is my...", Options: []string{"sister", "father", "brother", "aunt"}, CorrectIndex: 2, Difficulty: domain.DifficultyHard},
		{Text: "What do you use to write?", Options: []string{"An eraser", "A book", "A pen", "A chair"}, CorrectIndex: 2, Difficulty: domain.DifficultyHard},
	}
}
